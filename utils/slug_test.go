package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Fale Conosco":                "fale-conosco",
		"Inauguração da Nova Creche":  "inauguracao-da-nova-creche",
		"  Atenção: Saúde & Bem-Estar  ": "atencao-saude-bem-estar",
		"ALVARÁ 2026":                 "alvara-2026",
		"---":                         "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "input=%q", in)
	}
}
