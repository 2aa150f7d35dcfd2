package snowflake

import (
	"errors"
	"sync"

	"github.com/bwmarrin/snowflake"

	"PontoWeb/config"
)

var (
	node *snowflake.Node
	once sync.Once

	errInvalidMachineID   = errors.New("invalid snowflake machine id")
	errGeneratorUninitial = errors.New("snowflake generator is not initialized")
)

func Init() error {
	var initErr error

	once.Do(func() {
		machineID := config.Cfg.SnowflakeMachineID
		if machineID < 0 || machineID > 1023 {
			initErr = errInvalidMachineID
			return
		}

		var err error
		node, err = snowflake.NewNode(machineID)
		if err != nil {
			initErr = err
			return
		}
	})

	return initErr
}

// NextID gera o id de correlação usado em inserções de ponto e solicitações
// de ajuste, para rastrear a operação nos logs de ambos os lados.
func NextID() (int64, error) {
	if node == nil {
		return 0, errGeneratorUninitial
	}

	return node.Generate().Int64(), nil
}
