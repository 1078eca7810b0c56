package test

import (
	"net/http"
	"testing"

	"blogCPT/internal/apperr"
	handlers "blogCPT/internal/handler"
	"blogCPT/internal/models"
	"blogCPT/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestCreateCommentHandler(t *testing.T) {
	vars := map[string]string{"postId": postID}

	t.Run("success", func(t *testing.T) {
		f := newFixture()
		f.comments.On("Create", anyCtx, alice, postID, service.CommentRequest{Content: "Great loaf"}).
			Return(&models.Comment{CommentID: commentID, Content: "Great loaf", PostID: postID}, nil)

		rr := serve(f.handler.CreateComment, newRequest(t, http.MethodPost, "/api/v1/comments/post/"+postID, map[string]string{"content": "Great loaf"}, vars, alice))

		assert.Equal(t, http.StatusCreated, rr.Code)
		var comment models.Comment
		decode(t, rr, &comment)
		assert.Equal(t, 0, comment.Likes)
	})

	t.Run("negative likes", func(t *testing.T) {
		f := newFixture()

		rr := serve(f.handler.CreateComment, newRequest(t, http.MethodPost, "/api/v1/comments/post/"+postID, map[string]interface{}{"content": "x", "likes": -1}, vars, alice))

		assertJSONError(t, rr, http.StatusBadRequest, "likes")
	})

	t.Run("empty content", func(t *testing.T) {
		f := newFixture()

		rr := serve(f.handler.CreateComment, newRequest(t, http.MethodPost, "/api/v1/comments/post/"+postID, map[string]string{"content": ""}, vars, alice))

		assertJSONError(t, rr, http.StatusBadRequest, "content")
	})

	t.Run("missing post", func(t *testing.T) {
		f := newFixture()
		f.comments.On("Create", anyCtx, alice, postID, service.CommentRequest{Content: "hi"}).
			Return(nil, apperr.NotFound("post with ID %s not found", postID))

		rr := serve(f.handler.CreateComment, newRequest(t, http.MethodPost, "/api/v1/comments/post/"+postID, map[string]string{"content": "hi"}, vars, alice))

		assertJSONError(t, rr, http.StatusNotFound, postID)
	})
}

func TestCommentReadHandlers(t *testing.T) {
	t.Run("count", func(t *testing.T) {
		f := newFixture()
		f.comments.On("CountByPost", anyCtx, postID, (*models.Identity)(nil)).Return(int64(3), nil)

		rr := serve(f.handler.CountPostComments, newRequest(t, http.MethodGet, "/api/v1/comments/post/"+postID+"/count", nil, map[string]string{"postId": postID}, nil))

		var body handlers.CountResponse
		decode(t, rr, &body)
		assert.Equal(t, int64(3), body.Count)
	})

	t.Run("by post", func(t *testing.T) {
		f := newFixture()
		f.comments.On("ListByPost", anyCtx, postID, alice).Return([]models.Comment{{CommentID: commentID}}, nil)

		rr := serve(f.handler.ListPostComments, newRequest(t, http.MethodGet, "/api/v1/comments/post/"+postID, nil, map[string]string{"postId": postID}, alice))

		assert.Equal(t, http.StatusOK, rr.Code)
		f.comments.AssertExpectations(t)
	})

	t.Run("by hidden draft", func(t *testing.T) {
		f := newFixture()
		f.comments.On("ListByPost", anyCtx, postID, (*models.Identity)(nil)).Return(nil, apperr.NotFound("post with ID %s not found", postID))

		rr := serve(f.handler.ListPostComments, newRequest(t, http.MethodGet, "/api/v1/comments/post/"+postID, nil, map[string]string{"postId": postID}, nil))

		assertJSONError(t, rr, http.StatusNotFound, postID)
	})

	t.Run("by user", func(t *testing.T) {
		f := newFixture()
		f.comments.On("ListByUser", anyCtx, userID).Return([]models.Comment{}, nil)

		rr := serve(f.handler.ListUserComments, newRequest(t, http.MethodGet, "/api/v1/comments/user/"+userID, nil, map[string]string{"userId": userID}, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("all", func(t *testing.T) {
		f := newFixture()
		f.comments.On("ListAll", anyCtx).Return([]models.Comment{}, nil)

		rr := serve(f.handler.ListComments, newRequest(t, http.MethodGet, "/api/v1/comments", nil, nil, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("one", func(t *testing.T) {
		f := newFixture()
		f.comments.On("Get", anyCtx, commentID).Return(&models.Comment{CommentID: commentID}, nil)

		rr := serve(f.handler.GetComment, newRequest(t, http.MethodGet, "/api/v1/comments/"+commentID, nil, map[string]string{"id": commentID}, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestCommentWriteHandlers(t *testing.T) {
	vars := map[string]string{"id": commentID}

	t.Run("update by someone else", func(t *testing.T) {
		f := newFixture()
		f.comments.On("Update", anyCtx, commentID, alice, service.CommentRequest{Content: "edited"}).
			Return(nil, apperr.Forbidden("you can only update your own comments"))

		rr := serve(f.handler.UpdateComment, newRequest(t, http.MethodPut, "/api/v1/comments/"+commentID, map[string]string{"content": "edited"}, vars, alice))

		assertJSONError(t, rr, http.StatusForbidden, "own comments")
	})

	t.Run("delete", func(t *testing.T) {
		f := newFixture()
		f.comments.On("Delete", anyCtx, commentID, alice).Return(nil)

		rr := serve(f.handler.DeleteComment, newRequest(t, http.MethodDelete, "/api/v1/comments/"+commentID, nil, vars, alice))

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("like", func(t *testing.T) {
		f := newFixture()
		f.comments.On("Like", anyCtx, commentID).Return(&models.Comment{CommentID: commentID, Likes: 1}, nil)

		rr := serve(f.handler.LikeComment, newRequest(t, http.MethodPost, "/api/v1/comments/"+commentID+"/like", nil, vars, nil))

		var comment models.Comment
		decode(t, rr, &comment)
		assert.Equal(t, 1, comment.Likes)
	})

	t.Run("unlike missing comment", func(t *testing.T) {
		f := newFixture()
		f.comments.On("Unlike", anyCtx, commentID).Return(nil, apperr.NotFound("comment with ID %s not found", commentID))

		rr := serve(f.handler.UnlikeComment, newRequest(t, http.MethodPost, "/api/v1/comments/"+commentID+"/unlike", nil, vars, nil))

		assertJSONError(t, rr, http.StatusNotFound, commentID)
	})
}
