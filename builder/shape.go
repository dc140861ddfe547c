package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseShape turns "kind:n" (for example "cycle:6") into a Constructor.
// Known kinds: path, cycle, star, wheel, complete.
func ParseShape(spec string) (Constructor, error) {
	kind, size, ok := strings.Cut(strings.TrimSpace(spec), ":")
	if !ok {
		return nil, fmt.Errorf("shape %q: want kind:n", spec)
	}
	n, err := strconv.Atoi(size)
	if err != nil {
		return nil, fmt.Errorf("shape %q: size: %w", spec, err)
	}

	switch strings.ToLower(kind) {
	case "path":
		return Path(n), nil
	case "cycle":
		return Cycle(n), nil
	case "star":
		return Star(n), nil
	case "wheel":
		return Wheel(n), nil
	case "complete":
		return Complete(n), nil
	default:
		return nil, fmt.Errorf("shape %q: unknown kind %q", spec, kind)
	}
}
