// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService - это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Weighted is one entry of a ChooseWeighted table.
type Weighted[T any] struct {
	Value  T
	Weight int
}

// ChooseWeighted выполняет взвешенный случайный выбор из таблицы.
// An empty table yields the zero value; a table whose weights sum to zero
// yields its first entry.
func ChooseWeighted[T any](s *PRNGService, entries []Weighted[T]) T {
	var zero T
	if len(entries) == 0 {
		return zero
	}
	total := 0
	for _, e := range entries {
		total += max(e.Weight, 0)
	}
	if total <= 0 {
		return entries[0].Value
	}
	r := s.Intn(total)
	upto := 0
	for _, e := range entries {
		upto += max(e.Weight, 0)
		if r < upto {
			return e.Value
		}
	}
	return entries[len(entries)-1].Value
}
