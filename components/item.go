package components

import (
	cfg "github.com/automoto/skybreaker/config"
	"github.com/yohamta/donburi"
)

type ItemData struct {
	Kind      cfg.ItemKind
	FallSpeed float64
}

var Item = donburi.NewComponentType[ItemData]()
