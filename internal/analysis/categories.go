package analysis

import (
	"errors"
	"fmt"
	"sort"

	"edascope/internal/dataset"
)

// ErrInvalidParameter marks caller-facing parameter validation failures.
var ErrInvalidParameter = errors.New("invalid parameter")

// CategoryCount is one value of a categorical column with its frequency.
type CategoryCount struct {
	Value string
	Count int
}

// CategoryTable maps each categorical column name to its most frequent
// values, descending by count, ties broken by first appearance in the data.
type CategoryTable map[string][]CategoryCount

// TopCategories ranks the topK most frequent non-missing values of every
// categorical column. topK must be positive; the dataset is not touched
// otherwise.
func TopCategories(ds *dataset.Dataset, topK int) (CategoryTable, error) {
	if topK <= 0 {
		return nil, fmt.Errorf("%w: top_k must be positive, got %d", ErrInvalidParameter, topK)
	}
	table := CategoryTable{}
	for _, col := range ds.Columns {
		nonMissing := col.NonMissing()
		if classify(nonMissing) != KindCategorical {
			continue
		}
		table[col.Name] = rankValues(nonMissing, topK)
	}
	return table, nil
}

func rankValues(values []string, topK int) []CategoryCount {
	counts := map[string]int{}
	var ranked []CategoryCount
	for _, v := range values {
		if counts[v] == 0 {
			ranked = append(ranked, CategoryCount{Value: v})
		}
		counts[v]++
	}
	for i := range ranked {
		ranked[i].Count = counts[ranked[i].Value]
	}
	// Stable sort keeps first-seen order among equal counts.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > topK {
		ranked = ranked[:topK]
	}
	return ranked
}
