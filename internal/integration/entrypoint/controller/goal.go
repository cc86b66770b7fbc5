package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/application/usecase/goal"
	"github.com/goalflow/backend/internal/domain/entity"
	domainerror "github.com/goalflow/backend/internal/domain/error"
	"github.com/goalflow/backend/internal/integration/entrypoint/dto"
)

const dateLayout = "2006-01-02"

// GoalController handles goal endpoints.
type GoalController struct {
	createUseCase     *goal.CreateGoalUseCase
	getUseCase        *goal.GetGoalUseCase
	listUseCase       *goal.ListGoalsUseCase
	updateUseCase     *goal.UpdateGoalUseCase
	deleteUseCase     *goal.DeleteGoalUseCase
	hierarchyUseCase  *goal.GetHierarchyUseCase
	searchUseCase     *goal.SearchGoalsUseCase
	bulkStatusUseCase *goal.BulkUpdateStatusUseCase
	bulkDeleteUseCase *goal.BulkDeleteUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	createUseCase *goal.CreateGoalUseCase,
	getUseCase *goal.GetGoalUseCase,
	listUseCase *goal.ListGoalsUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
	hierarchyUseCase *goal.GetHierarchyUseCase,
	searchUseCase *goal.SearchGoalsUseCase,
	bulkStatusUseCase *goal.BulkUpdateStatusUseCase,
	bulkDeleteUseCase *goal.BulkDeleteUseCase,
) *GoalController {
	return &GoalController{
		createUseCase:     createUseCase,
		getUseCase:        getUseCase,
		listUseCase:       listUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
		hierarchyUseCase:  hierarchyUseCase,
		searchUseCase:     searchUseCase,
		bulkStatusUseCase: bulkStatusUseCase,
		bulkDeleteUseCase: bulkDeleteUseCase,
	}
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	workspaceID, _ := uuid.Parse(req.WorkspaceID)
	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start_date, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidGoalDates),
		})
		return
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid end_date, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidGoalDates),
		})
		return
	}

	input := goal.CreateGoalInput{
		OwnerID:     userID,
		WorkspaceID: workspaceID,
		Title:       req.Title,
		Description: req.Description,
		Type:        entity.GoalType(req.Type),
		StartDate:   startDate,
		EndDate:     endDate,
	}
	if req.ParentID != nil {
		parentID, _ := uuid.Parse(*req.ParentID)
		input.ParentID = &parentID
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(dto.ToGoalResponse(output.Goal)))
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	goalID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{
		GoalID: goalID,
		UserID: userID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToGoalDetailResponse(output.Goal)))
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	workspaceID, ok := parseWorkspaceQuery(ctx)
	if !ok {
		return
	}

	input := goal.ListGoalsInput{
		UserID:      userID,
		WorkspaceID: workspaceID,
	}
	if status := ctx.Query("status"); status != "" {
		input.Statuses = []entity.GoalStatus{entity.GoalStatus(status)}
	}
	if goalType := ctx.Query("type"); goalType != "" {
		input.Types = []entity.GoalType{entity.GoalType(goalType)}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToGoalListResponse(output.Goals)))
}

// Update handles PATCH /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	goalID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	input := goal.UpdateGoalInput{
		GoalID:      goalID,
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Progress:    req.Progress,
	}
	if req.Status != nil {
		status := entity.GoalStatus(*req.Status)
		input.Status = &status
	}
	if req.StartDate != nil {
		startDate, err := time.Parse(dateLayout, *req.StartDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start_date, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidGoalDates),
			})
			return
		}
		input.StartDate = &startDate
	}
	if req.EndDate != nil {
		endDate, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end_date, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidGoalDates),
			})
			return
		}
		input.EndDate = &endDate
	}
	if req.DetachParent {
		var detached *uuid.UUID
		input.ParentID = &detached
	} else if req.ParentID != nil {
		parentID, _ := uuid.Parse(*req.ParentID)
		parentPtr := &parentID
		input.ParentID = &parentPtr
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToGoalResponse(output.Goal)))
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	goalID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput{
		GoalID: goalID,
		UserID: userID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.MessageResponse{Message: output.Message}))
}

// Hierarchy handles GET /goals/hierarchy requests.
func (c *GoalController) Hierarchy(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	workspaceID, ok := parseWorkspaceQuery(ctx)
	if !ok {
		return
	}

	output, err := c.hierarchyUseCase.Execute(ctx.Request.Context(), goal.GetHierarchyInput{
		UserID:      userID,
		WorkspaceID: workspaceID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	response := dto.HierarchyResponse{Roots: make([]dto.GoalDetailResponse, len(output.Roots))}
	for i, root := range output.Roots {
		response.Roots[i] = dto.ToGoalDetailResponse(root)
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(response))
}

// Search handles GET /goals/search requests.
func (c *GoalController) Search(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	workspaceID, ok := parseWorkspaceQuery(ctx)
	if !ok {
		return
	}

	output, err := c.searchUseCase.Execute(ctx.Request.Context(), goal.SearchGoalsInput{
		UserID:      userID,
		WorkspaceID: workspaceID,
		Query:       ctx.Query("q"),
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToGoalListResponse(output.Goals)))
}

// BulkUpdateStatus handles PATCH /goals/bulk requests.
func (c *GoalController) BulkUpdateStatus(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.BulkUpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	output, err := c.bulkStatusUseCase.Execute(ctx.Request.Context(), goal.BulkUpdateStatusInput{
		UserID:  userID,
		GoalIDs: parseUUIDs(req.GoalIDs),
		Status:  entity.GoalStatus(req.Status),
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToBulkResponse(output.Results)))
}

// BulkDelete handles DELETE /goals/bulk requests.
func (c *GoalController) BulkDelete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.BulkDeleteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	output, err := c.bulkDeleteUseCase.Execute(ctx.Request.Context(), goal.BulkDeleteInput{
		UserID:  userID,
		GoalIDs: parseUUIDs(req.GoalIDs),
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToBulkResponse(output.Results)))
}

// parseUUIDs converts validated ID strings to UUIDs.
func parseUUIDs(ids []string) []uuid.UUID {
	parsed := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if u, err := uuid.Parse(id); err == nil {
			parsed = append(parsed, u)
		}
	}
	return parsed
}
