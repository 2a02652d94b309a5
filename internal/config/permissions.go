package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"
)

// CheckPathPermissions verifica se um arquivo de credenciais está protegido:
// deve pertencer ao usuário atual e não ter permissões para grupo ou outros.
// Arquivo inexistente passa com o motivo "not_found".
func CheckPathPermissions(path string) (bool, string) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return true, "not_found"
	}
	if err != nil {
		return false, fmt.Sprintf("stat_error %v", err)
	}

	mode := info.Mode().Perm()

	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		if uid := os.Getuid(); uid >= 0 && int(st.Uid) != uid {
			return false, fmt.Sprintf("bad_owner uid=%d expected=%d", st.Uid, uid)
		}
	}

	if mode&0o077 != 0 {
		return false, fmt.Sprintf("too_permissive mode=0o%o expected_like=0o600", mode)
	}

	return true, "ok"
}
