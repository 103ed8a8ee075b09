package models

// Bucket holds the tally of one set of Target/SL selections.
type Bucket struct {
	Accuracy float64 `json:"accuracy"`
	Target   int     `json:"target"`
	SL       int     `json:"sl"`
	Total    int     `json:"total"`
}

// AccuracyResult is the readback summary of a filled manual report.
// Combined sums the counts of both sets before computing its accuracy.
type AccuracyResult struct {
	Set1     Bucket `json:"set1"`
	Set2     Bucket `json:"set2"`
	Combined Bucket `json:"combined"`
}
