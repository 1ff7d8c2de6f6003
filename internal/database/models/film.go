package models

import "time"

type Film struct {
	ID    int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Title string `gorm:"not null" json:"title" binding:"required"`

	Homepage    *string    `json:"homepage"`
	ReleaseDate *time.Time `gorm:"column:releasedate" json:"releasedate"`
	Overview    *string    `gorm:"type:varchar(2048)" json:"overview"`
	PosterPath  *string    `gorm:"column:posterpath" json:"posterpath"`
	Runtime     *int       `json:"runtime"`
	Tagline     *string    `json:"tagline"`
	Popularity  *float64   `json:"popularity"`
	ImdbId      *string    `gorm:"column:imdbid" json:"imdbid"`
	VoteAverage *float64   `gorm:"column:voteaverage" json:"voteaverage"`
	VoteCount   *int       `gorm:"column:votecount" json:"votecount"`
}

func (Film) TableName() string { return "film" }
