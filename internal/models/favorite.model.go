package models

type Favorite struct {
	BaseModel
	UserID      string  `gorm:"type:varchar(25);not null;uniqueIndex:idx_favorites_user_artist,priority:1" json:"userId"`
	ArtistID    string  `gorm:"type:text;not null;uniqueIndex:idx_favorites_user_artist,priority:2"        json:"artistId"`
	ArtistName  *string `gorm:"type:text"                                                                  json:"artistName"`
	ArtistImage *string `gorm:"type:text"                                                                  json:"artistImage"`
	ArtistURL   *string `gorm:"type:text"                                                                  json:"artistUrl"`
}

// FavoriteConflictColumns is the key insert-if-absent resolves against.
var FavoriteConflictColumns = []string{"user_id", "artist_id"}
