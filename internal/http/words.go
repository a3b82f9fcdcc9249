package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ekaraca/wordbank/internal/database/words"
	"github.com/ekaraca/wordbank/internal/entities"
)

// WordStore defines database operations for word management.
type WordStore interface {
	GetWordByID(id uint) (*entities.Word, error)
	GetWordByGermanWord(german string) (*entities.Word, error)
	GetWordByGermanAndEnglish(german, english string) (*entities.Word, error)
	ListWords(opts words.ListOptions) ([]entities.Word, int64, error)
	CreateWord(word *entities.Word, categoryIDs []uint) (*entities.Word, error)
	UpdateWord(id uint, upd words.WordUpdate) (*entities.Word, error)
	DeleteWord(id uint) (bool, error)
}

type WordsController struct {
	store WordStore
}

func NewWordsController(store WordStore) *WordsController {
	return &WordsController{store: store}
}

// WordCreateRequest is the request body for creating a word.
type WordCreateRequest struct {
	GermanWord         string            `json:"german_word" binding:"required"`
	EnglishTranslation string            `json:"english_translation" binding:"required"`
	TurkishTranslation string            `json:"turkish_translation" binding:"required"`
	Artikel            *string           `json:"artikel" binding:"omitempty,max=3"`
	PluralForm         *string           `json:"plural_form"`
	Conjugations       map[string]string `json:"conjugations"`
	BasicSentence      *string           `json:"basic_sentence"`
	AdvancedSentence   *string           `json:"advanced_sentence"`
	Note               *string           `json:"note"`
	ImageURL           *string           `json:"image_url"`
	GenderPairID       *uint             `json:"gender_pair_id"`
	CategoryIDs        []uint            `json:"category_ids"`
}

// CreateWord adds a new word.
// POST /words/
func (wc *WordsController) CreateWord(c *gin.Context) {
	var req WordCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	// Duplicate pre-check; the unique index on german_word is the
	// backstop for the window between this check and the insert.
	existing, err := wc.store.GetWordByGermanWord(req.GermanWord)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		respondInternalError(c, err, "check word")
		return
	}
	if existing != nil {
		respondBadRequest(c, "This German word already exists in the database.")
		return
	}

	word := &entities.Word{
		GermanWord:         req.GermanWord,
		EnglishTranslation: req.EnglishTranslation,
		TurkishTranslation: req.TurkishTranslation,
		Artikel:            req.Artikel,
		PluralForm:         req.PluralForm,
		Conjugations:       req.Conjugations,
		BasicSentence:      req.BasicSentence,
		AdvancedSentence:   req.AdvancedSentence,
		Note:               req.Note,
		ImageURL:           req.ImageURL,
		GenderPairID:       req.GenderPairID,
	}

	created, err := wc.store.CreateWord(word, req.CategoryIDs)
	if err != nil {
		respondInternalError(c, err, "create word")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListWords returns a filtered, sorted and paginated word listing with
// the total count of the filtered set.
// GET /words/
func (wc *WordsController) ListWords(c *gin.Context) {
	skip, limit := parsePagination(c)

	opts := words.ListOptions{
		Skip:     skip,
		Limit:    limit,
		Search:   c.Query("search"),
		Ordering: c.Query("ordering"),
	}

	if idStr := c.Query("category_id"); idStr != "" {
		v, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil {
			respondBadRequest(c, "invalid category_id")
			return
		}
		id := uint(v)
		opts.CategoryID = &id
	}

	items, total, err := wc.store.ListWords(opts)
	if err != nil {
		respondInternalError(c, err, "list words")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_count": total,
		"words":       items,
	})
}

// GetWord returns a single word by ID.
// GET /words/:id
func (wc *WordsController) GetWord(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	word, err := wc.store.GetWordByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "Word")
			return
		}
		respondInternalError(c, err, "get word")
		return
	}

	c.JSON(http.StatusOK, word)
}

// UpdateWord applies a partial update. Only fields present in the payload
// change; category_ids with a list replaces the word's categories,
// category_ids as null (or absent) leaves them untouched.
// PUT /words/:id
func (wc *WordsController) UpdateWord(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var upd words.WordUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	word, err := wc.store.UpdateWord(id, upd)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "Word")
			return
		}
		respondInternalError(c, err, "update word")
		return
	}

	c.JSON(http.StatusOK, word)
}

// DeleteWord removes a word and its category associations.
// DELETE /words/:id
func (wc *WordsController) DeleteWord(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	deleted, err := wc.store.DeleteWord(id)
	if err != nil {
		respondInternalError(c, err, "delete word")
		return
	}
	if !deleted {
		respondNotFound(c, "Word")
		return
	}

	c.Status(http.StatusNoContent)
}
