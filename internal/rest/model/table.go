package model

import (
	"github.com/sergeii/cryptotools/pkg/classical/playfair"
)

type TableQuery struct {
	Key string `binding:"required" form:"key"`
}

type Table struct {
	Key     string   `json:"key"`
	Letters string   `json:"letters"`
	Rows    []string `json:"rows"`
}

func NewTableFromDomain(key string, table playfair.Table) Table {
	rows := table.Rows()
	return Table{
		Key:     key,
		Letters: table.Letters(),
		Rows:    rows[:],
	}
}
