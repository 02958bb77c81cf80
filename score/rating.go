package score

// Accumulate folds one more rating into a running count and sum and returns
// the new average.
func Accumulate(count int, sum float64, rating float64) (int, float64, float64) {
	sum = sum + rating
	count = count + 1
	average := sum / float64(count)
	return count, sum, average
}

// AverageRating returns the arithmetic mean of ratings and how many there are.
// An empty set averages to zero.
func AverageRating(ratings []float64) (float64, int) {
	if len(ratings) == 0 {
		return 0, 0
	}

	var (
		count   int
		sum     float64
		average float64
	)
	for _, r := range ratings {
		count, sum, average = Accumulate(count, sum, r)
	}
	return average, count
}
