// Package wordlist loads word categories and selects secret words.
//
// Categories are plain text files named categories/<name>.txt, one word
// per line. They can come from the embedded defaults or from a directory
// on disk.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"path"
	"sort"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// All is the pseudo-category aggregating every loaded word list.
const All = "all"

// AllLabel is the display label for the aggregate pool.
const AllLabel = "All Categories"

var (
	// ErrNoCategories means no category files were found at load time.
	ErrNoCategories = errors.New("no categories found")
	// ErrNoWords means the selected pool has no words to pick from.
	ErrNoWords = errors.New("no words available")
)

// Category is a named pool of candidate words.
type Category struct {
	Name  string
	Words []string
}

// Registry holds loaded categories and picks secret words from them.
type Registry struct {
	categories []Category
	byName     map[string]*Category
}

// Load reads every categories/*.txt file from fsys. Blank lines are
// dropped and words are lowercased; a category with no usable words is
// kept but cannot supply a secret word.
func Load(fsys fs.FS) (*Registry, error) {
	files, err := fs.Glob(fsys, "categories/*.txt")
	if err != nil {
		return nil, fmt.Errorf("scanning categories: %w", err)
	}
	if len(files) == 0 {
		return nil, ErrNoCategories
	}
	sort.Strings(files)

	r := &Registry{byName: make(map[string]*Category)}
	for _, file := range files {
		words, err := readWords(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("loading category file %s: %w", file, err)
		}
		name := strings.ToLower(strings.TrimSuffix(path.Base(file), ".txt"))
		r.categories = append(r.categories, Category{Name: name, Words: words})
	}
	for i := range r.categories {
		r.byName[r.categories[i].Name] = &r.categories[i]
	}
	return r, nil
}

// MustLoad loads a registry, panicking on error. Use this for the
// embedded word lists, which must be present for the game to function.
func MustLoad(fsys fs.FS) *Registry {
	r, err := Load(fsys)
	if err != nil {
		panic(err)
	}
	return r
}

// Names returns the category names in load order.
func (r *Registry) Names() []string {
	return lo.Map(r.categories, func(c Category, _ int) string {
		return c.Name
	})
}

// Count returns the number of loaded categories.
func (r *Registry) Count() int {
	return len(r.categories)
}

// Has reports whether a category with the given name was loaded.
func (r *Registry) Has(name string) bool {
	_, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Pick selects a random word from the named category. The name "all", or
// any name that matches no category, selects from the aggregate pool of
// every word list. Returns the word and the resolved category label, or
// ErrNoWords when the pool is empty.
func (r *Registry) Pick(rng *rand.Rand, name string) (word, label string, err error) {
	name = strings.ToLower(strings.TrimSpace(name))

	cat, ok := r.byName[name]
	if !ok || name == All {
		pool := r.allWords()
		if len(pool) == 0 {
			return "", AllLabel, ErrNoWords
		}
		return pool[rng.Intn(len(pool))], AllLabel, nil
	}

	if len(cat.Words) == 0 {
		return "", titleCase(cat.Name), ErrNoWords
	}
	return cat.Words[rng.Intn(len(cat.Words))], titleCase(cat.Name), nil
}

// allWords flattens every category into one pool, in load order.
func (r *Registry) allWords() []string {
	return lo.FlatMap(r.categories, func(c Category, _ int) []string {
		return c.Words
	})
}

func readWords(fsys fs.FS, file string) ([]string, error) {
	f, err := fsys.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lo.Uniq(words), nil
}

// titleCase uppercases the first letter of a category name for display.
func titleCase(name string) string {
	runes := []rune(name)
	if len(runes) == 0 {
		return name
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
