package storage

import (
	"PontoWeb/storage/redis"
)

// O Redis é o único armazenamento local: sessões e caches de curta duração.
// Todo estado durável (usuários, cargos, registros) vive no backend remoto.

func Init() error {
	if err := redis.Init(); err != nil {
		return err
	}

	return nil
}
