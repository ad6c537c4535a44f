package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeListLiteral(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
		ok   bool
	}{
		{"single quoted", "['Price', 'Support']", []string{"Price", "Support"}, true},
		{"double quoted", `["Price", "Support"]`, []string{"Price", "Support"}, true},
		{"one item", "['Delivery']", []string{"Delivery"}, true},
		{"empty list", "[]", []string{}, true},
		{"surrounding space", "  ['A','B','C']  ", []string{"A", "B", "C"}, true},
		{"escaped quote", `['it\'s fine']`, []string{"it's fine"}, true},
		{"comma inside item", "['Price, fees', 'Support']", []string{"Price, fees", "Support"}, true},
		{"plain string", "not a list", nil, false},
		{"unquoted item", "[Price]", nil, false},
		{"trailing comma", "['Price',]", nil, false},
		{"unterminated quote", "['Price]", nil, false},
		{"missing close bracket", "['Price'", nil, false},
		{"empty input", "", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := decodeListLiteral(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDecodeDictLiteral(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want map[string]string
		ok   bool
	}{
		{"two pairs", "{'customer': 'Hindi', 'agent': 'English'}", map[string]string{"customer": "Hindi", "agent": "English"}, true},
		{"double quoted", `{"customer": "Tamil"}`, map[string]string{"customer": "Tamil"}, true},
		{"empty dict", "{}", map[string]string{}, true},
		{"plain string", "Hindi", nil, false},
		{"missing colon", "{'customer' 'Hindi'}", nil, false},
		{"unquoted value", "{'customer': Hindi}", nil, false},
		{"unterminated", "{'customer': 'Hindi'", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := decodeDictLiteral(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
