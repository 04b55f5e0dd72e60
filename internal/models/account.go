package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TimeFormat is the layout used for timestamps in API responses. Timestamps are
// stored as epoch seconds and only rendered in this form at the boundary.
const TimeFormat = "2006-01-02 15:04:05"

// GeoPoint is a GeoJSON point. Coordinates are [longitude, latitude].
type GeoPoint struct {
	Type        string    `bson:"type" json:"type" validate:"required,eq=Point"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates" validate:"required,len=2"`
}

// Account is a household record as stored in the accounts collection. The
// history array is embedded in the document so appends stay atomic per account.
type Account struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Number    string             `bson:"number"`
	Name      string             `bson:"name"`
	Address   string             `bson:"address"`
	Location  GeoPoint           `bson:"location"`
	History   []History          `bson:"history,omitempty"`
	CreatedAt int64              `bson:"createdAt"`
	UpdatedAt int64              `bson:"updatedAt"`
}

// AccountView is the response shape for an account: stringified id and
// formatted timestamps instead of the stored epoch values.
type AccountView struct {
	ID        string        `json:"id"`
	Number    string        `json:"number"`
	Name      string        `json:"name"`
	Address   string        `json:"address"`
	Location  GeoPoint      `json:"location"`
	History   []HistoryView `json:"history,omitempty"`
	CreatedAt string        `json:"createdAt"`
	UpdatedAt string        `json:"updatedAt"`
}

// View maps the stored account to its response shape.
func (a *Account) View() AccountView {
	view := AccountView{
		ID:        a.ID.Hex(),
		Number:    a.Number,
		Name:      a.Name,
		Address:   a.Address,
		Location:  a.Location,
		CreatedAt: FormatEpoch(a.CreatedAt),
		UpdatedAt: FormatEpoch(a.UpdatedAt),
	}
	for _, entry := range a.History {
		view.History = append(view.History, entry.View())
	}
	return view
}

// AccountViews maps a slice of stored accounts, preserving order.
func AccountViews(accounts []Account) []AccountView {
	views := make([]AccountView, 0, len(accounts))
	for i := range accounts {
		views = append(views, accounts[i].View())
	}
	return views
}

// FormatEpoch renders epoch seconds as a UTC timestamp string.
func FormatEpoch(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(TimeFormat)
}
