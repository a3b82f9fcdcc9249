// Package words provides database operations for vocabulary word management.
//
// This package implements the WordStore interface defined in internal/http/words.go.
//
// # Interface Implementation
//
//	var _ http.WordStore = (*Repository)(nil)
//
// # Usage
//
//	repo := words.NewRepository(db)
//	words, total, err := repo.ListWords(words.ListOptions{Limit: 20})
package words

import (
	"errors"
	"strings"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/ekaraca/wordbank/internal/entities"
)

// Repository handles all word database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new words repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListOptions controls filtering, ordering and pagination of word listings.
type ListOptions struct {
	Skip       int
	Limit      int
	CategoryID *uint  // only words belonging to this category
	Search     string // case-insensitive substring on german_word or english_translation
	Ordering   string // sortable column name, "-" prefix for descending
}

// sortableColumns is the fixed set of columns a client may order by.
// Anything outside this set never reaches the SQL layer and is ignored
// without an error, leaving the default row order.
var sortableColumns = map[string]bool{
	"id":                  true,
	"german_word":         true,
	"english_translation": true,
	"turkish_translation": true,
	"created_at":          true,
	"updated_at":          true,
}

// WordUpdate carries a partial update for a word. A field is applied only
// when its key appeared in the payload; a null value clears nullable
// columns, while explicit nulls on the three required columns are ignored.
// CategoryIDs with a value (including an empty list) replaces the word's
// full category set; null or absent leaves the set untouched.
type WordUpdate struct {
	GermanWord         entities.Optional[string]            `json:"german_word"`
	EnglishTranslation entities.Optional[string]            `json:"english_translation"`
	TurkishTranslation entities.Optional[string]            `json:"turkish_translation"`
	Artikel            entities.Optional[string]            `json:"artikel"`
	PluralForm         entities.Optional[string]            `json:"plural_form"`
	Conjugations       entities.Optional[map[string]string] `json:"conjugations"`
	BasicSentence      entities.Optional[string]            `json:"basic_sentence"`
	AdvancedSentence   entities.Optional[string]            `json:"advanced_sentence"`
	Note               entities.Optional[string]            `json:"note"`
	ImageURL           entities.Optional[string]            `json:"image_url"`
	GenderPairID       entities.Optional[uint]              `json:"gender_pair_id"`
	CategoryIDs        entities.Optional[[]uint]            `json:"category_ids"`
}

// GetWordByID retrieves a word by ID with its categories.
func (r *Repository) GetWordByID(id uint) (*entities.Word, error) {
	var word entities.Word
	err := r.db.Preload("Categories").First(&word, id).Error
	if err != nil {
		return nil, err
	}
	normalizeCategories(&word)
	return &word, nil
}

// GetWordByGermanWord retrieves a word by its unique German form.
func (r *Repository) GetWordByGermanWord(german string) (*entities.Word, error) {
	var word entities.Word
	err := r.db.Preload("Categories").Where("german_word = ?", german).First(&word).Error
	if err != nil {
		return nil, err
	}
	normalizeCategories(&word)
	return &word, nil
}

// GetWordByGermanAndEnglish retrieves a word matching both translations.
// This is an advisory duplicate check only: the pair carries no unique
// index, so a concurrent create can still slip past it.
func (r *Repository) GetWordByGermanAndEnglish(german, english string) (*entities.Word, error) {
	var word entities.Word
	err := r.db.Preload("Categories").
		Where("german_word = ? AND english_translation = ?", german, english).
		First(&word).Error
	if err != nil {
		return nil, err
	}
	normalizeCategories(&word)
	return &word, nil
}

// ListWords returns one page of words plus the total count of the
// filtered set. The count uses the same predicate as the page, so
// clients can derive page numbers from it. Offset and limit are applied
// after filtering, search and ordering; a skip past the end yields an
// empty page.
func (r *Repository) ListWords(opts ListOptions) ([]entities.Word, int64, error) {
	var total int64
	if err := r.applyFilters(r.db.Model(&entities.Word{}), opts).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.applyFilters(r.db.Model(&entities.Word{}), opts).Preload("Categories")
	query = applyOrdering(query, opts.Ordering)
	if opts.Skip > 0 {
		query = query.Offset(opts.Skip)
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	var words []entities.Word
	if err := query.Find(&words).Error; err != nil {
		return nil, 0, err
	}
	for i := range words {
		normalizeCategories(&words[i])
	}
	return words, total, nil
}

func (r *Repository) applyFilters(query *gorm.DB, opts ListOptions) *gorm.DB {
	if opts.CategoryID != nil {
		query = query.Where(
			"words.id IN (SELECT word_id FROM word_categories WHERE category_id = ?)",
			*opts.CategoryID,
		)
	}
	if opts.Search != "" {
		pattern := "%" + opts.Search + "%"
		query = query.Where(
			"LOWER(german_word) LIKE LOWER(?) OR LOWER(english_translation) LIKE LOWER(?)",
			pattern, pattern,
		)
	}
	return query
}

func applyOrdering(query *gorm.DB, ordering string) *gorm.DB {
	column := strings.TrimPrefix(ordering, "-")
	if !sortableColumns[column] {
		return query
	}
	if strings.HasPrefix(ordering, "-") {
		return query.Order(column + " DESC")
	}
	return query.Order(column + " ASC")
}

// CreateWord inserts a new word and attaches its initial category set.
// Category ids that do not exist are dropped silently. The repository
// does not pre-check german_word uniqueness; that is the caller's
// contract, with the column's unique index as the backstop.
func (r *Repository) CreateWord(word *entities.Word, categoryIDs []uint) (*entities.Word, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if ids := lo.Uniq(categoryIDs); len(ids) > 0 {
			var cats []entities.Category
			if err := tx.Where("id IN ?", ids).Find(&cats).Error; err != nil {
				return err
			}
			word.Categories = cats
		}
		return tx.Create(word).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetWordByID(word.ID)
}

// UpdateWord applies a partial update. Returns gorm.ErrRecordNotFound
// when the id is unknown. The word row is saved even when only the
// category set changed, so updated_at always advances.
func (r *Repository) UpdateWord(id uint, upd WordUpdate) (*entities.Word, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var word entities.Word
		if err := tx.First(&word, id).Error; err != nil {
			return err
		}

		if upd.GermanWord.Set && upd.GermanWord.Valid {
			word.GermanWord = upd.GermanWord.Value
		}
		if upd.EnglishTranslation.Set && upd.EnglishTranslation.Valid {
			word.EnglishTranslation = upd.EnglishTranslation.Value
		}
		if upd.TurkishTranslation.Set && upd.TurkishTranslation.Valid {
			word.TurkishTranslation = upd.TurkishTranslation.Value
		}
		if upd.Artikel.Set {
			word.Artikel = upd.Artikel.Ptr()
		}
		if upd.PluralForm.Set {
			word.PluralForm = upd.PluralForm.Ptr()
		}
		if upd.Conjugations.Set {
			word.Conjugations = nil
			if upd.Conjugations.Valid {
				word.Conjugations = upd.Conjugations.Value
			}
		}
		if upd.BasicSentence.Set {
			word.BasicSentence = upd.BasicSentence.Ptr()
		}
		if upd.AdvancedSentence.Set {
			word.AdvancedSentence = upd.AdvancedSentence.Ptr()
		}
		if upd.Note.Set {
			word.Note = upd.Note.Ptr()
		}
		if upd.ImageURL.Set {
			word.ImageURL = upd.ImageURL.Ptr()
		}
		if upd.GenderPairID.Set {
			word.GenderPairID = upd.GenderPairID.Ptr()
		}

		if err := tx.Omit("Categories").Save(&word).Error; err != nil {
			return err
		}

		if upd.CategoryIDs.Set && upd.CategoryIDs.Valid {
			var cats []entities.Category
			if ids := lo.Uniq(upd.CategoryIDs.Value); len(ids) > 0 {
				if err := tx.Where("id IN ?", ids).Find(&cats).Error; err != nil {
					return err
				}
			}
			assoc := tx.Model(&word).Association("Categories")
			if len(cats) == 0 {
				return assoc.Clear()
			}
			return assoc.Replace(&cats)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetWordByID(id)
}

// DeleteWord removes a word together with its category associations.
// Words that referenced it as their gender pair keep existing with the
// link set to null. Returns false when the id is unknown.
func (r *Repository) DeleteWord(id uint) (bool, error) {
	var word entities.Word
	if err := r.db.First(&word, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.Word{}).
			Where("gender_pair_id = ?", id).
			Update("gender_pair_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&word).Association("Categories").Clear(); err != nil {
			return err
		}
		return tx.Delete(&entities.Word{}, id).Error
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// normalizeCategories keeps the JSON contract stable: a word with no
// categories serializes as an empty list, not null.
func normalizeCategories(word *entities.Word) {
	if word.Categories == nil {
		word.Categories = []entities.Category{}
	}
}
