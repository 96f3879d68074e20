package models

// Question is a single trivia question. Category holds the id of a Category
// row; the reference is checked when a question is created, not enforced by
// the schema.
type Question struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Question   string `json:"question" gorm:"type:text;not null"`
	Answer     string `json:"answer" gorm:"type:text;not null"`
	Category   uint   `json:"category" gorm:"not null;index"`
	Difficulty int    `json:"difficulty" gorm:"not null"`
}
