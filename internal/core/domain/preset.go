package domain

import "fmt"

// Preset is a predefined offering that can be hired with a single action.
type Preset struct {
	// Key is the stable identifier used on the command line.
	Key string

	// Service is the entry appended when the preset is hired.
	Service Service
}

// Presets returns the built-in hireable offerings in display order.
func Presets() []Preset {
	return []Preset{
		{Key: "sitio-web", Service: NewService("Sitio web", 2900, 1)},
		{Key: "tienda-online", Service: NewService("Tienda Online", 4500, 1)},
	}
}

// LookupPreset finds a preset by key.
func LookupPreset(key string) (Preset, error) {
	for _, p := range Presets() {
		if p.Key == key {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %s", ErrUnknownPreset, key)
}
