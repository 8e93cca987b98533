package craft

import (
	"errors"
	"fmt"
)

// DefaultMaxPasses - ограничение числа проходов по умолчанию.
const DefaultMaxPasses = 10_000

var ErrFixedOutOfRange = errors.New("craft: fixed department index out of range")

type Config struct {
	// MaxPasses - верхняя граница числа проходов. Единственный предохранитель
	// от зацикливания при отрицательных весах.
	MaxPasses int

	// Fixed - индексы отделов, которые не участвуют в обменах.
	Fixed []int

	// Initial - начальная перестановка (отдел -> место); nil означает тождественную.
	Initial []int

	// Verbose включает вывод каждого принятого обмена через glog.Infof.
	// Куда попадут строки, решают флаги glog: по умолчанию это файлы во
	// временном каталоге, в stderr - только при -logtostderr (CLI и Lambda
	// включают его сами).
	Verbose bool
}

func DefaultConfig() Config {
	return Config{
		MaxPasses: DefaultMaxPasses,
	}
}

func (c Config) Validate() error {
	if c.MaxPasses <= 0 {
		return fmt.Errorf(
			"MaxPasses должно быть > 0 (получено %d)",
			c.MaxPasses,
		)
	}
	seen := make(map[int]struct{}, len(c.Fixed))
	for _, idx := range c.Fixed {
		if idx < 0 {
			return fmt.Errorf(
				"%w: %d",
				ErrFixedOutOfRange,
				idx,
			)
		}
		if _, ok := seen[idx]; ok {
			return fmt.Errorf(
				"отдел %d указан в Fixed дважды",
				idx,
			)
		}
		seen[idx] = struct{}{}
	}
	return nil
}
