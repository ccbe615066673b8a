package entity

import (
	"encoding/json"
	"fmt"
)

// BeerType enumeración cerrada de estilos de cerveza.
type BeerType string

const (
	Lager    BeerType = "LAGER"
	Malzbier BeerType = "MALZBIER"
	Witbier  BeerType = "WITBIER"
	Weiss    BeerType = "WEISS"
	Ale      BeerType = "ALE"
	IPA      BeerType = "IPA"
	Stout    BeerType = "STOUT"
)

// beerTypeLabels etiqueta legible fija por estilo.
var beerTypeLabels = map[BeerType]string{
	Lager:    "Lager",
	Malzbier: "Malzbier",
	Witbier:  "Witbier",
	Weiss:    "Weiss",
	Ale:      "Ale",
	IPA:      "IPA",
	Stout:    "Stout",
}

// ParseBeerType valida y convierte el valor recibido en un BeerType.
func ParseBeerType(s string) (BeerType, error) {
	t := BeerType(s)
	if _, ok := beerTypeLabels[t]; !ok {
		return "", fmt.Errorf("tipo de cerveza desconocido: %q", s)
	}
	return t, nil
}

// Valid indica si el valor pertenece a la enumeración.
func (t BeerType) Valid() bool {
	_, ok := beerTypeLabels[t]
	return ok
}

// Label devuelve la etiqueta legible del estilo.
func (t BeerType) Label() string {
	return beerTypeLabels[t]
}

func (t BeerType) String() string { return string(t) }

// MarshalJSON serializa el estilo por su nombre de enumeración.
func (t BeerType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

// UnmarshalJSON rechaza valores fuera de la enumeración.
func (t *BeerType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseBeerType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
