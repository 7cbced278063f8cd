package planning

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"creator-app/database"
	"creator-app/internal/domain/ideas"
	"creator-app/internal/domain/planning"
	"creator-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testUserID uint = 1

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	require.NoError(t, db.Create(&users.User{
		ID:    testUserID,
		Name:  "Test",
		Email: "test@example.com",
	}).Error)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", testUserID)
		c.Next()
	})

	r.GET("/workflow", GetWorkflow)
	r.POST("/workflow", CreateWorkflow)
	r.POST("/workflow/columns", AppendColumn)
	r.GET("/workflow/presets", ListPresets)
	r.GET("/board", GetBoard)
	r.GET("/cards", ListCards)
	r.POST("/cards", CreateCard)
	r.PUT("/cards/:id", UpdateCard)
	r.PUT("/cards/:id/move", MoveCard)
	r.DELETE("/cards/:id", DeleteCard)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createClassicWorkflow(t *testing.T, r *gin.Engine) planning.Workflow {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/workflow", gin.H{"preset": "classic"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var wf planning.Workflow
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &wf))
	require.Len(t, wf.Columns, 3)
	return wf
}

func createCard(t *testing.T, r *gin.Engine, columnID, title string) planning.ContentCard {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/cards", gin.H{
		"title":     title,
		"column_id": columnID,
		"platforms": []string{"youtube"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var card planning.ContentCard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &card))
	return card
}

func TestGetWorkflowBeforeOnboarding(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/workflow", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateWorkflowFromPreset(t *testing.T) {
	r := setupRouter(t)

	wf := createClassicWorkflow(t, r)
	assert.Equal(t, []string{"Idea", "In Progress", "Done"}, columnNames(wf))

	// onboarding is recorded on the user
	var u users.User
	require.NoError(t, database.DB.First(&u, testUserID).Error)
	assert.NotNil(t, u.OnboardedAt)

	// a second workflow is refused
	w := doJSON(t, r, http.MethodPost, "/workflow", gin.H{"preset": "classic"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateWorkflowCustomColumns(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/workflow", gin.H{
		"columns": []string{"  Draft ", "", "Publish"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var wf planning.Workflow
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &wf))
	assert.Equal(t, []string{"Draft", "Publish"}, columnNames(wf))
}

func TestCreateWorkflowTooFewColumns(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/workflow", gin.H{
		"columns": []string{"", "Plan", ""},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// nothing was written
	var count int64
	database.DB.Model(&planning.Workflow{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateWorkflowConflictsWithExistingRow(t *testing.T) {
	r := setupRouter(t)

	// workflow written by another request, bypassing this handler
	require.NoError(t, database.DB.Create(&planning.Workflow{
		ID:     uuid.NewString(),
		UserID: testUserID,
	}).Error)

	w := doJSON(t, r, http.MethodPost, "/workflow", gin.H{"preset": "classic"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// no second workflow, no stray columns
	var workflows, columns int64
	database.DB.Model(&planning.Workflow{}).Count(&workflows)
	database.DB.Model(&planning.WorkflowColumn{}).Count(&columns)
	assert.EqualValues(t, 1, workflows)
	assert.Zero(t, columns)
}

func TestCreateWorkflowUnknownPreset(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/workflow", gin.H{"preset": "waterfall"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAppendColumn(t *testing.T) {
	r := setupRouter(t)
	wf := createClassicWorkflow(t, r)

	w := doJSON(t, r, http.MethodPost, "/workflow/columns", gin.H{"name": " Review "})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var col planning.WorkflowColumn
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &col))
	assert.Equal(t, "Review", col.Name)
	assert.Equal(t, 3, col.Position)

	// workflow revision advanced
	var fresh planning.Workflow
	require.NoError(t, database.DB.First(&fresh, "id = ?", wf.ID).Error)
	assert.Equal(t, wf.Revision+1, fresh.Revision)
}

func TestAppendColumnAtCap(t *testing.T) {
	r := setupRouter(t)
	createClassicWorkflow(t, r)

	for i := 0; i < planning.MaxColumns-3; i++ {
		w := doJSON(t, r, http.MethodPost, "/workflow/columns", gin.H{"name": fmt.Sprintf("Extra %d", i)})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodPost, "/workflow/columns", gin.H{"name": "One too many"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCardValidation(t *testing.T) {
	r := setupRouter(t)
	wf := createClassicWorkflow(t, r)
	colID := wf.Columns[0].ID

	// missing platforms
	w := doJSON(t, r, http.MethodPost, "/cards", gin.H{
		"title":     "My video",
		"column_id": colID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// missing title
	w = doJSON(t, r, http.MethodPost, "/cards", gin.H{
		"column_id": colID,
		"platforms": []string{"youtube"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// column from someone else's workflow
	w = doJSON(t, r, http.MethodPost, "/cards", gin.H{
		"title":     "My video",
		"column_id": "not-a-column",
		"platforms": []string{"youtube"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCardAppendsToColumnEnd(t *testing.T) {
	r := setupRouter(t)
	wf := createClassicWorkflow(t, r)
	colID := wf.Columns[0].ID

	first := createCard(t, r, colID, "one")
	second := createCard(t, r, colID, "two")

	assert.Equal(t, 0, first.Position)
	assert.Equal(t, 1, second.Position)
	assert.Equal(t, 0, first.Revision)
}

func seedIdea(t *testing.T, idea ideas.Idea) ideas.Idea {
	t.Helper()
	if idea.ID == "" {
		idea.ID = uuid.NewString()
	}
	idea.UserID = testUserID
	if idea.Status == "" {
		idea.Status = ideas.StatusDumped
	}
	require.NoError(t, database.DB.Create(&idea).Error)
	return idea
}

func TestCreateCardPrefillsFromIdea(t *testing.T) {
	r := setupRouter(t)
	wf := createClassicWorkflow(t, r)

	idea := seedIdea(t, ideas.Idea{
		Title:          "Morning routine vlog",
		RawText:        "Film the 5am routine, keep it under 8 minutes",
		TargetPlatform: "youtube",
	})

	w := doJSON(t, r, http.MethodPost, "/cards", gin.H{
		"column_id": wf.Columns[0].ID,
		"idea_id":   idea.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var card planning.ContentCard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &card))
	assert.Equal(t, "Morning routine vlog", card.Title)
	assert.Equal(t, idea.RawText, card.Description)
	assert.Equal(t, []string{"youtube"}, []string(card.Platforms))
	require.NotNil(t, card.IdeaID)
	assert.Equal(t, idea.ID, *card.IdeaID)
}

func TestCreateCardExplicitFieldsWinOverIdea(t *testing.T) {
	r := setupRouter(t)
	wf := createClassicWorkflow(t, r)

	idea := seedIdea(t, ideas.Idea{
		Title:          "Morning routine vlog",
		TargetPlatform: "youtube",
	})

	w := doJSON(t, r, http.MethodPost, "/cards", gin.H{
		"column_id": wf.Columns[0].ID,
		"idea_id":   idea.ID,
		"title":     "Evening routine vlog",
		"platforms": []string{"tiktok"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var card planning.ContentCard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &card))
	assert.Equal(t, "Evening routine vlog", card.Title)
	assert.Equal(t, []string{"tiktok"}, []string(card.Platforms))
	require.NotNil(t, card.IdeaID)
}

func TestCreateCardPrefillIsOneShot(t *testing.T) {
	r := setupRouter(t)
	wf := createClassicWorkflow(t, r)

	idea := seedIdea(t, ideas.Idea{Title: "Original title", TargetPlatform: "youtube"})

	w := doJSON(t, r, http.MethodPost, "/cards", gin.H{
		"column_id": wf.Columns[0].ID,
		"idea_id":   idea.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var card planning.ContentCard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &card))

	// later idea edits never reach the card
	require.NoError(t, database.DB.Model(&ideas.Idea{}).
		Where("id = ?", idea.ID).
		Update("title", "Renamed idea").Error)

	var fresh planning.ContentCard
	require.NoError(t, database.DB.First(&fresh, "id = ?", card.ID).Error)
	assert.Equal(t, "Original title", fresh.Title)
}

func TestCreateCardIgnoresVanishedIdea(t *testing.T) {
	r := setupRouter(t)
	wf := createClassicWorkflow(t, r)

	// an idea id that no longer resolves does not block the card,
	// but the card has to stand on its own fields
	w := doJSON(t, r, http.MethodPost, "/cards", gin.H{
		"column_id": wf.Columns[0].ID,
		"idea_id":   uuid.NewString(),
		"title":     "Standalone card",
		"platforms": []string{"instagram"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var card planning.ContentCard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &card))
	assert.Equal(t, "Standalone card", card.Title)
	assert.Nil(t, card.IdeaID)

	// without its own title the vanished idea has nothing to prefill
	w = doJSON(t, r, http.MethodPost, "/cards", gin.H{
		"column_id": wf.Columns[0].ID,
		"idea_id":   uuid.NewString(),
		"platforms": []string{"instagram"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMoveCardToOtherColumn(t *testing.T) {
	r := setupRouter(t)
	wf := createClassicWorkflow(t, r)
	idea, progress := wf.Columns[0].ID, wf.Columns[1].ID

	card := createCard(t, r, idea, "one")
	createCard(t, r, progress, "already there")

	w := doJSON(t, r, http.MethodPut, "/cards/"+card.ID+"/move", gin.H{
		"revision":  card.Revision,
		"column_id": progress,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Moved bool                 `json:"moved"`
		Card  planning.ContentCard `json:"card"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Moved)
	assert.Equal(t, progress, resp.Card.ColumnID)
	assert.Equal(t, 1, resp.Card.Position)
	assert.Equal(t, card.Revision+1, resp.Card.Revision)
}

func TestMoveCardNoOp(t *testing.T) {
	r := setupRouter(t)
	wf := createClassicWorkflow(t, r)
	colID := wf.Columns[0].ID

	card := createCard(t, r, colID, "one")

	w := doJSON(t, r, http.MethodPut, "/cards/"+card.ID+"/move", gin.H{
		"revision":  card.Revision,
		"column_id": colID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Moved bool                 `json:"moved"`
		Card  planning.ContentCard `json:"card"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Moved)
	assert.Equal(t, card.Revision, resp.Card.Revision)
}

func TestMoveCardStaleRevision(t *testing.T) {
	r := setupRouter(t)
	wf := createClassicWorkflow(t, r)
	idea, progress := wf.Columns[0].ID, wf.Columns[1].ID

	card := createCard(t, r, idea, "one")

	// first move succeeds and bumps the revision
	w := doJSON(t, r, http.MethodPut, "/cards/"+card.ID+"/move", gin.H{
		"revision":  card.Revision,
		"column_id": progress,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// replaying with the old revision conflicts
	w = doJSON(t, r, http.MethodPut, "/cards/"+card.ID+"/move", gin.H{
		"revision":  card.Revision,
		"column_id": idea,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestMoveCardUnknownColumn(t *testing.T) {
	r := setupRouter(t)
	wf := createClassicWorkflow(t, r)

	card := createCard(t, r, wf.Columns[0].ID, "one")

	w := doJSON(t, r, http.MethodPut, "/cards/"+card.ID+"/move", gin.H{
		"revision":  card.Revision,
		"column_id": "not-a-column",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMoveDeletedCard(t *testing.T) {
	r := setupRouter(t)
	wf := createClassicWorkflow(t, r)

	card := createCard(t, r, wf.Columns[0].ID, "one")

	w := doJSON(t, r, http.MethodDelete, "/cards/"+card.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, "/cards/"+card.ID+"/move", gin.H{
		"revision":  card.Revision,
		"column_id": wf.Columns[1].ID,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateCardStaleRevision(t *testing.T) {
	r := setupRouter(t)
	wf := createClassicWorkflow(t, r)

	card := createCard(t, r, wf.Columns[0].ID, "one")

	w := doJSON(t, r, http.MethodPut, "/cards/"+card.ID, gin.H{
		"revision": card.Revision,
		"title":    "renamed",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPut, "/cards/"+card.ID, gin.H{
		"revision": card.Revision,
		"title":    "renamed again",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdateCardDoesNotTouchPlacement(t *testing.T) {
	r := setupRouter(t)
	wf := createClassicWorkflow(t, r)

	card := createCard(t, r, wf.Columns[0].ID, "one")

	w := doJSON(t, r, http.MethodPut, "/cards/"+card.ID, gin.H{
		"revision":    card.Revision,
		"description": "now with notes",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated planning.ContentCard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, card.ColumnID, updated.ColumnID)
	assert.Equal(t, card.Position, updated.Position)
	assert.Equal(t, "one", updated.Title)
}

func TestBoardGroupsCardsPerColumn(t *testing.T) {
	r := setupRouter(t)
	wf := createClassicWorkflow(t, r)
	idea, progress, done := wf.Columns[0].ID, wf.Columns[1].ID, wf.Columns[2].ID

	a := createCard(t, r, idea, "script hooks")
	b := createCard(t, r, idea, "edit vlog")
	createCard(t, r, progress, "thumbnail pass")

	// move a to done; board must regroup accordingly
	w := doJSON(t, r, http.MethodPut, "/cards/"+a.ID+"/move", gin.H{
		"revision":  a.Revision,
		"column_id": done,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/board", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var board BoardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &board))
	require.Len(t, board.Columns, 3)

	assert.Len(t, board.Columns[0].Cards, 1)
	assert.Equal(t, b.ID, board.Columns[0].Cards[0].ID)
	assert.Len(t, board.Columns[1].Cards, 1)
	assert.Len(t, board.Columns[2].Cards, 1)
	assert.Equal(t, a.ID, board.Columns[2].Cards[0].ID)
}

func TestBoardRequiresWorkflow(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/board", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func columnNames(wf planning.Workflow) []string {
	names := make([]string, 0, len(wf.Columns))
	for _, col := range wf.Columns {
		names = append(names, col.Name)
	}
	return names
}
