// Package source - слой получения исходных данных: превращает внешние
// представления (JSON, XLSX, компактные строки) в проверенный экземпляр задачи.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"facilityLayout/internal/layout"
)

// Problem - проверенные данные для запуска поиска.
type Problem struct {
	Instance *layout.Instance
	// Fixed - индексы закреплённых отделов (неизвестные метки уже отброшены).
	Fixed []int
	// Initial - начальная перестановка; nil означает тождественную.
	Initial []int
	// MaxPasses - 0 означает значение по умолчанию.
	MaxPasses int
	// Warnings - некритичные замечания (например, неизвестные метки).
	Warnings []string
}

type Source interface {
	Load() (*Problem, error)
}

// FileSource выбирает источник по расширению файла.
func FileSource(path string) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return jsonFile(path), nil
	case ".xlsx":
		return XLSXSource{Path: path}, nil
	default:
		return nil, fmt.Errorf("неподдерживаемый формат файла %q (ожидается .json или .xlsx)", path)
	}
}

type jsonFile string

func (p jsonFile) Load() (*Problem, error) {
	data, err := os.ReadFile(string(p))
	if err != nil {
		return nil, err
	}
	return ParseJSON(data)
}

// ResolveFixed переводит метки в индексы. Неизвестные метки пропускаются
// с предупреждением, повторы схлопываются.
func ResolveFixed(labels, names []string) ([]int, []string) {
	index := make(map[string]int, len(labels))
	for i, lab := range labels {
		index[lab] = i
	}

	var (
		fixed    []int
		warnings []string
	)
	seen := make(map[int]struct{})
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		i, ok := index[name]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown label '%s' ignored", name))
			continue
		}
		if _, dup := seen[i]; dup {
			continue
		}
		seen[i] = struct{}{}
		fixed = append(fixed, i)
	}
	return fixed, warnings
}

// SplitLabels разбирает список меток через запятую.
func SplitLabels(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
