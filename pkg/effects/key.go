package effects

// Key identifies which ambient effect is running.
type Key string

const (
	KeyNone      Key = "none"
	KeyLightning Key = "lightning"
	KeyFire      Key = "fire"
	KeyWater     Key = "water"
	KeyEarth     Key = "earth"
	KeyWind      Key = "wind"
	KeyPoison    Key = "poison"
	KeyJoker     Key = "joker"
	KeyFoggy     Key = "foggy"
)

// MechanicRandomElemental is the board mechanic whose effect follows the
// currently active element instead of the mechanic name.
const MechanicRandomElemental = "random_elemental"

// AllKeys lists every key with a generator, in viewer order.
var AllKeys = []Key{
	KeyLightning,
	KeyFire,
	KeyWater,
	KeyEarth,
	KeyWind,
	KeyPoison,
	KeyJoker,
	KeyFoggy,
}

// Elements 随机元素机制可能选出的元素
var Elements = []string{"fire", "water", "earth", "wind", "lightning"}

// IsElement reports whether s is one of the five rotating elements.
func IsElement(s string) bool {
	for _, e := range Elements {
		if e == s {
			return true
		}
	}
	return false
}

// ResolveKey maps the external (mechanicType, activeElement) pair to an effect key.
//
//	random_elemental + element → element (or none when element is absent/invalid)
//	anything else              → the mechanic itself
//
// Unknown mechanics pass through unchanged; the registry treats them as none.
// With random_elemental only the five element keys pass through: a non-element
// value such as "poison" resolves to none instead of being used as the key.
func ResolveKey(mechanicType, activeElement string) Key {
	if mechanicType == MechanicRandomElemental {
		if IsElement(activeElement) {
			return Key(activeElement)
		}
		return KeyNone
	}
	if mechanicType == "" {
		return KeyNone
	}
	return Key(mechanicType)
}

// Layer is the z-order slot the overlay occupies relative to interactive content.
type Layer int

const (
	// LayerBackground draws beneath the board (ambiance).
	LayerBackground Layer = iota
	// LayerForeground draws above the board.
	LayerForeground
)

func (l Layer) String() string {
	if l == LayerForeground {
		return "foreground"
	}
	return "background"
}

// Layer returns where an effect with this key is drawn. Only lightning is
// promoted above the board.
func (k Key) Layer() Layer {
	if k == KeyLightning {
		return LayerForeground
	}
	return LayerBackground
}
