package entities

import "time"

// Word is a single vocabulary entry: a German word with its English and
// Turkish translations plus optional grammatical metadata and example
// sentences.
type Word struct {
	ID                 uint   `gorm:"primaryKey" json:"id"`
	GermanWord         string `gorm:"uniqueIndex;size:100;not null" json:"german_word"`
	EnglishTranslation string `gorm:"size:100;not null" json:"english_translation"`
	TurkishTranslation string `gorm:"size:100;not null" json:"turkish_translation"`

	// Noun-specific fields
	Artikel    *string `gorm:"size:3" json:"artikel"`
	PluralForm *string `gorm:"size:100" json:"plural_form"`

	// Verb conjugations, an open-ended tense -> form mapping
	Conjugations map[string]string `gorm:"serializer:json" json:"conjugations"`

	// Example sentences
	BasicSentence    *string `gorm:"type:text" json:"basic_sentence"`
	AdvancedSentence *string `gorm:"type:text" json:"advanced_sentence"`

	Note     *string `gorm:"type:text" json:"note"`
	ImageURL *string `gorm:"size:255" json:"image_url"`

	// Self-reference linking e.g. "der Lehrer" to "die Lehrerin".
	// Deleting the referenced word clears this link on the survivors.
	GenderPairID *uint `gorm:"index" json:"gender_pair_id"`
	GenderPair   *Word `gorm:"foreignKey:GenderPairID" json:"-"`

	Categories []Category `gorm:"many2many:word_categories;" json:"categories"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Word) TableName() string {
	return "words"
}

// Category is a named label grouping words.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;size:50;not null" json:"name"`

	Words []Word `gorm:"many2many:word_categories;" json:"-"`
}

func (Category) TableName() string {
	return "categories"
}
