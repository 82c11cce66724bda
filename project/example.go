package project

import (
	"math/big"

	"github.com/regview/regview/register"
)

func placed(off int64) *int64 { return &off }

// ExampleDocument returns the starter project shown on first launch: a small
// UART-style peripheral exercising every field kind.
func ExampleDocument() Document {
	ctrl := register.RegisterDef{
		ID:          "ctrl",
		Name:        "CTRL",
		Description: "Control register",
		Width:       8,
		Offset:      placed(0x00),
		Fields: []register.Field{
			register.Flag{
				FieldInfo: register.FieldInfo{ID: "ctrl.en", Name: "EN", MSB: 7, LSB: 7},
				Clear:     "DISABLED", Set: "ENABLED",
			},
			register.Flag{
				FieldInfo: register.FieldInfo{ID: "ctrl.irq", Name: "IRQ_EN", MSB: 6, LSB: 6},
			},
			register.Enum{
				FieldInfo: register.FieldInfo{ID: "ctrl.parity", Name: "PARITY", MSB: 5, LSB: 4},
				Entries: []register.EnumEntry{
					{Value: 0, Name: "NONE"},
					{Value: 1, Name: "ODD"},
					{Value: 2, Name: "EVEN"},
				},
			},
			register.Integer{
				FieldInfo: register.FieldInfo{ID: "ctrl.stop", Name: "STOP_BITS", MSB: 1, LSB: 0},
			},
		},
	}

	baud := register.RegisterDef{
		ID:          "baud",
		Name:        "BAUD_DIV",
		Description: "Baud rate divisor",
		Width:       16,
		Offset:      placed(0x04),
		Fields: []register.Field{
			register.Integer{
				FieldInfo: register.FieldInfo{ID: "baud.div", Name: "DIV", MSB: 15, LSB: 0},
			},
		},
	}

	gain := register.RegisterDef{
		ID:          "gain",
		Name:        "GAIN",
		Description: "Analog front-end gain, Q4.4",
		Width:       8,
		Offset:      placed(0x06),
		Fields: []register.Field{
			register.FixedPoint{
				FieldInfo: register.FieldInfo{ID: "gain.q", Name: "GAIN", MSB: 7, LSB: 0},
				IntBits:   4, FracBits: 4,
			},
		},
	}

	temp := register.RegisterDef{
		ID:          "temp",
		Name:        "TEMP",
		Description: "Die temperature, degrees C",
		Width:       32,
		Offset:      placed(0x08),
		Fields: []register.Field{
			register.Float{
				FieldInfo: register.FieldInfo{ID: "temp.val", Name: "TEMP", MSB: 31, LSB: 0},
				Precision: register.Single,
			},
		},
	}

	return Document{
		Version:   1,
		Registers: []register.RegisterDef{ctrl, baud, gain, temp},
		Values: register.ValueMap{
			"ctrl": big.NewInt(0xA1),
			"baud": big.NewInt(0x01A1),
		},
	}
}
