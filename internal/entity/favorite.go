package entity

import "time"

type Favorite struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	BookID    int64     `json:"book_id"`
	Book      Book      `json:"book"`
	CreatedAt time.Time `json:"created_at"`
}
