package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	tests := map[string]string{
		"":                                  "",
		"Rede":                              "Rede",
		"  Acesso à Rede  ":                  "Acesso à Rede",
		"Ana <b>Souza</b>":                  "Ana Souza",
		"<script>alert(1)</script>Hardware": "Hardware",
		"P&D":                               "P&D",
		"E-mail <img src=x onerror=y>":      "E-mail",
		"Rede <Wi-Fi>":                      "Rede <Wi-Fi>",
		"VPN <Matriz>":                      "VPN <Matriz>",
		"Impressora <b>3º andar</b>":         "Impressora 3º andar",
		"<!-- x -->Acesso":                  "Acesso",
		"S01 < S02":                         "S01 < S02",
		"Rede &amp; VPN":                    "Rede & VPN",
	}
	for in, want := range tests {
		assert.Equal(t, want, PlainText(in), "input %q", in)
	}
}
