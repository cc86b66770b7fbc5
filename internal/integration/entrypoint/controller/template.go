package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/goalflow/backend/internal/application/usecase/template"
	"github.com/goalflow/backend/internal/domain/entity"
	domainerror "github.com/goalflow/backend/internal/domain/error"
	"github.com/goalflow/backend/internal/integration/entrypoint/dto"
)

// TemplateController handles goal template endpoints.
type TemplateController struct {
	createUseCase     *template.CreateTemplateUseCase
	listUseCase       *template.ListTemplatesUseCase
	updateUseCase     *template.UpdateTemplateUseCase
	deleteUseCase     *template.DeleteTemplateUseCase
	createGoalUseCase *template.CreateGoalFromTemplateUseCase
}

// NewTemplateController creates a new template controller instance.
func NewTemplateController(
	createUseCase *template.CreateTemplateUseCase,
	listUseCase *template.ListTemplatesUseCase,
	updateUseCase *template.UpdateTemplateUseCase,
	deleteUseCase *template.DeleteTemplateUseCase,
	createGoalUseCase *template.CreateGoalFromTemplateUseCase,
) *TemplateController {
	return &TemplateController{
		createUseCase:     createUseCase,
		listUseCase:       listUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
		createGoalUseCase: createGoalUseCase,
	}
}

// Create handles POST /goals/templates requests.
func (c *TemplateController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateTemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTemplateFields),
		})
		return
	}

	input := template.CreateTemplateInput{
		UserID:             userID,
		Name:               req.Name,
		Description:        req.Description,
		Type:               entity.GoalType(req.Type),
		Title:              req.Title,
		DefaultDescription: req.DefaultDescription,
		IsPublic:           req.IsPublic,
	}
	if req.WorkspaceID != nil {
		workspaceID, _ := uuid.Parse(*req.WorkspaceID)
		input.WorkspaceID = &workspaceID
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(dto.ToTemplateResponse(output.Template)))
}

// List handles GET /goals/templates requests.
func (c *TemplateController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	input := template.ListTemplatesInput{UserID: userID}
	if workspaceParam := ctx.Query("workspaceId"); workspaceParam != "" {
		workspaceID, err := uuid.Parse(workspaceParam)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid workspaceId",
				Code:  string(domainerror.ErrCodeWorkspaceNotFound),
			})
			return
		}
		input.WorkspaceID = &workspaceID
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToTemplateListResponse(output.Templates)))
}

// Update handles PATCH /goals/templates/:id requests.
func (c *TemplateController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	templateID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateTemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTemplateFields),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), template.UpdateTemplateInput{
		UserID:             userID,
		TemplateID:         templateID,
		Name:               req.Name,
		Description:        req.Description,
		Title:              req.Title,
		DefaultDescription: req.DefaultDescription,
		IsPublic:           req.IsPublic,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToTemplateResponse(output.Template)))
}

// Delete handles DELETE /goals/templates/:id requests.
func (c *TemplateController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	templateID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), template.DeleteTemplateInput{
		UserID:     userID,
		TemplateID: templateID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(gin.H{"message": output.Message}))
}

// CreateGoal handles POST /goals/templates/:id/create-goal requests.
func (c *TemplateController) CreateGoal(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	templateID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateGoalFromTemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTemplateFields),
		})
		return
	}

	workspaceID, _ := uuid.Parse(req.WorkspaceID)
	input := template.CreateGoalFromTemplateInput{
		UserID:      userID,
		TemplateID:  templateID,
		WorkspaceID: workspaceID,
		Title:       req.Title,
	}
	if req.ParentID != nil {
		parentID, _ := uuid.Parse(*req.ParentID)
		input.ParentID = &parentID
	}

	output, err := c.createGoalUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(dto.ToGoalResponse(output.Goal)))
}
