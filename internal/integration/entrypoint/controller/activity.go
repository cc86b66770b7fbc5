package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/goalflow/backend/internal/application/usecase/activity"
	"github.com/goalflow/backend/internal/integration/entrypoint/dto"
)

// ActivityController handles activity feed endpoints.
type ActivityController struct {
	listUseCase *activity.ListActivitiesUseCase
}

// NewActivityController creates a new activity controller instance.
func NewActivityController(listUseCase *activity.ListActivitiesUseCase) *ActivityController {
	return &ActivityController{listUseCase: listUseCase}
}

// List handles GET /activities requests.
func (c *ActivityController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	workspaceID, ok := parseWorkspaceQuery(ctx)
	if !ok {
		return
	}

	limit := 0
	if limitParam := ctx.Query("limit"); limitParam != "" {
		limit, _ = strconv.Atoi(limitParam)
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), activity.ListActivitiesInput{
		UserID:      userID,
		WorkspaceID: workspaceID,
		Limit:       limit,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToActivityListResponse(output.Activities)))
}
