package models

// History is one meter-reading submission embedded in an account document.
// Entries are append-only; nothing in the system mutates or removes them.
// The bson names keep the external field aliases of the stored documents
// (photo, usage, usageTotal).
type History struct {
	Image        string `bson:"photo" json:"photo" validate:"required"`
	MeterReading int64  `bson:"usage" json:"usage" validate:"gte=0"`
	UsageTotal   int64  `bson:"usageTotal" json:"usageTotal" validate:"gte=0"`
	Timestamp    int64  `bson:"timestamp" json:"timestamp"`
}

// HistoryView is the response shape for a history entry.
type HistoryView struct {
	Image        string `json:"photo"`
	MeterReading int64  `json:"usage"`
	UsageTotal   int64  `json:"usageTotal"`
	Timestamp    string `json:"timestamp"`
}

// View maps the stored entry to its response shape.
func (h History) View() HistoryView {
	return HistoryView{
		Image:        h.Image,
		MeterReading: h.MeterReading,
		UsageTotal:   h.UsageTotal,
		Timestamp:    FormatEpoch(h.Timestamp),
	}
}
