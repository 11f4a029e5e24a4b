package models

import "time"

// Bulletin is a classified-ad style post owned by a user. OwnerUsername is
// resolved from the owning user when a bulletin is read back.
type Bulletin struct {
	ID            int       `json:"id"`
	Header        string    `json:"header"`
	Description   string    `json:"description"`
	UserID        int       `json:"user_id"`
	OwnerUsername string    `json:"owner,omitempty"`
	CreationTime  time.Time `json:"creation_time"`
}
