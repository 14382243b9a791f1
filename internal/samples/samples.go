package samples

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed data/*.txt
var dataFS embed.FS

// setOrder fixes the catalog order. Output ordering follows it, so new sets
// go at the end.
var setOrder = []string{"instruments", "guitar"}

// SetNames returns the names of all embedded sample sets in catalog order.
func SetNames() []string {
	names := make([]string, len(setOrder))
	copy(names, setOrder)
	return names
}

// Load returns the URLs of the named sample set in file order. Comment and
// blank lines are skipped and duplicates are dropped, first occurrence wins.
func Load(name string) ([]string, error) {
	data, err := dataFS.ReadFile("data/" + name + ".txt")
	if err != nil {
		return nil, fmt.Errorf("unknown sample set %q (available: %s)", name, strings.Join(setOrder, ", "))
	}
	return parse(string(data)), nil
}

// LoadAll returns the URLs of every embedded set, concatenated in catalog
// order.
func LoadAll() ([]string, error) {
	var urls []string
	for _, name := range setOrder {
		set, err := Load(name)
		if err != nil {
			return nil, err
		}
		urls = append(urls, set...)
	}
	return urls, nil
}

// Count returns the number of URLs in the named set.
func Count(name string) (int, error) {
	urls, err := Load(name)
	if err != nil {
		return 0, err
	}
	return len(urls), nil
}

func parse(raw string) []string {
	lines := strings.Split(raw, "\n")
	seen := make(map[string]struct{}, len(lines))
	var result []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, ok := seen[line]; !ok {
			seen[line] = struct{}{}
			result = append(result, line)
		}
	}
	return result
}
