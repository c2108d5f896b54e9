package services

import (
	"reflect"
	"testing"
)

func TestOffendingModules(t *testing.T) {
	tests := []struct {
		name      string
		requested []string
		valid     []string
		want      []string
	}{
		{
			name:      "tous valides",
			requested: []string{"m1", "m2"},
			valid:     []string{"m1", "m2"},
			want:      []string{},
		},
		{
			name:      "un rejeté",
			requested: []string{"m1", "m2", "m3"},
			valid:     []string{"m1", "m3"},
			want:      []string{"m2"},
		},
		{
			name:      "tous rejetés dans l'ordre de la demande",
			requested: []string{"m3", "m1", "m2"},
			valid:     []string{},
			want:      []string{"m3", "m1", "m2"},
		},
		{
			name:      "ensemble valide plus large que la demande",
			requested: []string{"m1"},
			valid:     []string{"m1", "m2", "m3"},
			want:      []string{},
		},
		{
			name:      "demande vide",
			requested: []string{},
			valid:     []string{"m1"},
			want:      []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OffendingModules(tt.requested, tt.valid)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("OffendingModules() = %v, attendu %v", got, tt.want)
			}
		})
	}
}

func TestDedupe(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"sans doublon", []string{"a", "b"}, []string{"a", "b"}},
		{"doublons consécutifs", []string{"a", "a", "b"}, []string{"a", "b"}},
		{"doublons éloignés, premier ordre conservé", []string{"b", "a", "b"}, []string{"b", "a"}},
		{"vide", []string{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dedupe(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("dedupe(%v) = %v, attendu %v", tt.input, got, tt.want)
			}
		})
	}
}
