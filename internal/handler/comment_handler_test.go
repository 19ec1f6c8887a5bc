package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"
	"github.com/stretchr/testify/mock"

	"toolhub/internal/apperr"
	"toolhub/internal/model"
)

func newCommentTestServer(svc *MockCommentService, caller *model.User) *apitest.APITest {
	e := newTestEcho()
	h := NewCommentHandler(svc)
	e.GET("/api/tools/:toolId/comments", h.List)
	g := e.Group("/api", withUser(caller))
	g.POST("/tools/:toolId/comments", h.Create)
	return apitest.New().Handler(e)
}

func TestCreateComment(t *testing.T) {
	caller := &model.User{ID: uuid.New(), FullName: "Jane"}
	toolID := uuid.New()

	svc := new(MockCommentService)
	svc.On("Create", mock.Anything, caller.ID, toolID, "great tool", (*uuid.UUID)(nil)).
		Return(&model.Comment{ID: uuid.New(), ToolID: toolID, UserID: caller.ID, Content: "great tool"}, nil)

	newCommentTestServer(svc, caller).
		Post("/api/tools/" + toolID.String() + "/comments").
		JSON(`{"content": "great tool"}`).
		Expect(t).
		Status(http.StatusCreated).
		Assert(jsonpath.Equal(`$.message`, "Comment added")).
		Assert(jsonpath.Equal(`$.data.content`, "great tool")).
		End()
}

func TestCreateComment_Reply(t *testing.T) {
	caller := &model.User{ID: uuid.New()}
	toolID := uuid.New()
	parentID := uuid.New()

	svc := new(MockCommentService)
	svc.On("Create", mock.Anything, caller.ID, toolID, "agreed", &parentID).
		Return(&model.Comment{ID: uuid.New(), ToolID: toolID, UserID: caller.ID, Content: "agreed", ParentID: &parentID}, nil)

	newCommentTestServer(svc, caller).
		Post("/api/tools/" + toolID.String() + "/comments").
		JSON(`{"content": "agreed", "parentId": "` + parentID.String() + `"}`).
		Expect(t).
		Status(http.StatusCreated).
		Assert(jsonpath.Equal(`$.data.parentId`, parentID.String())).
		End()
}

func TestCreateComment_MissingContent(t *testing.T) {
	caller := &model.User{ID: uuid.New()}
	svc := new(MockCommentService)

	newCommentTestServer(svc, caller).
		Post("/api/tools/" + uuid.NewString() + "/comments").
		JSON(`{}`).
		Expect(t).
		Status(http.StatusBadRequest).
		Assert(jsonpath.Equal(`$.message`, "Content is required")).
		End()
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateComment_CrossToolParent(t *testing.T) {
	caller := &model.User{ID: uuid.New()}
	toolID := uuid.New()
	parentID := uuid.New()

	svc := new(MockCommentService)
	svc.On("Create", mock.Anything, caller.ID, toolID, "hm", &parentID).
		Return(nil, apperr.Validation("Parent comment belongs to a different tool"))

	newCommentTestServer(svc, caller).
		Post("/api/tools/" + toolID.String() + "/comments").
		JSON(`{"content": "hm", "parentId": "` + parentID.String() + `"}`).
		Expect(t).
		Status(http.StatusBadRequest).
		Assert(jsonpath.Equal(`$.message`, "Parent comment belongs to a different tool")).
		End()
}

func TestListComments(t *testing.T) {
	toolID := uuid.New()
	parent := model.Comment{
		ID:      uuid.New(),
		ToolID:  toolID,
		Content: "top-level",
		Author:  &model.Profile{FullName: "Jane"},
	}
	parent.Replies = []model.Comment{
		{ID: uuid.New(), ToolID: toolID, Content: "nested", ParentID: &parent.ID},
	}

	svc := new(MockCommentService)
	svc.On("ListByTool", mock.Anything, toolID).Return([]model.Comment{parent}, nil)

	newCommentTestServer(svc, nil).
		Get("/api/tools/" + toolID.String() + "/comments").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.message`, "Fetched comments")).
		Assert(jsonpath.Len(`$.data.comments`, 1)).
		Assert(jsonpath.Equal(`$.data.comments[0].author.fullName`, "Jane")).
		Assert(jsonpath.Equal(`$.data.comments[0].replies[0].content`, "nested")).
		End()
}

func TestListComments_BadToolID(t *testing.T) {
	svc := new(MockCommentService)
	newCommentTestServer(svc, nil).
		Get("/api/tools/nope/comments").
		Expect(t).
		Status(http.StatusBadRequest).
		End()
	svc.AssertNotCalled(t, "ListByTool", mock.Anything, mock.Anything)
}
