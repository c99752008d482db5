package availability

import (
	"github.com/m04kA/SMC-StaffingService/internal/domain"
	"github.com/m04kA/SMC-StaffingService/pkg/types"
)

// Index недельные окна доступности персонала, сгруппированные по дню недели
// В индекс попадают только окна со статусом available и корректным интервалом
type Index struct {
	byDay map[domain.Weekday][]domain.StaffAvailabilityWindow
}

// NewIndex строит индекс из набора окон
func NewIndex(windows []domain.StaffAvailabilityWindow) *Index {
	idx := &Index{byDay: make(map[domain.Weekday][]domain.StaffAvailabilityWindow)}
	for _, w := range windows {
		idx.Add(w)
	}
	return idx
}

// Add добавляет окно в индекс
// Заблокированные, недоступные и некорректные окна игнорируются
func (idx *Index) Add(w domain.StaffAvailabilityWindow) {
	if !w.IsAvailable() || !w.IsWellFormed() || !w.DayOfWeek.IsValid() {
		return
	}
	idx.byDay[w.DayOfWeek] = append(idx.byDay[w.DayOfWeek], w)
}

// AvailableStaff возвращает сотрудников, чьё окно в день day полностью покрывает [from, to)
// Частичное пересечение не подходит. При from == to подходит любой доступный в этот день сотрудник.
// Каждый сотрудник возвращается один раз, порядок соответствует порядку добавления окон.
func (idx *Index) AvailableStaff(day domain.Weekday, from, to types.TimeString) []int64 {
	result := make([]int64, 0)
	seen := make(map[int64]struct{})

	zeroLength := from.Equal(to)
	for _, w := range idx.byDay[day] {
		if _, ok := seen[w.StaffID]; ok {
			continue
		}
		if !zeroLength && !w.Contains(from, to) {
			continue
		}
		seen[w.StaffID] = struct{}{}
		result = append(result, w.StaffID)
	}

	return result
}

// Len количество окон в индексе
func (idx *Index) Len() int {
	n := 0
	for _, windows := range idx.byDay {
		n += len(windows)
	}
	return n
}
