package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goalflow/backend/internal/application/usecase/workspace"
	"github.com/goalflow/backend/internal/domain/entity"
	domainerror "github.com/goalflow/backend/internal/domain/error"
	"github.com/goalflow/backend/internal/integration/entrypoint/dto"
)

// WorkspaceController handles workspace, member and invite endpoints.
type WorkspaceController struct {
	createUseCase       *workspace.CreateWorkspaceUseCase
	listUseCase         *workspace.ListWorkspacesUseCase
	getUseCase          *workspace.GetWorkspaceUseCase
	updateUseCase       *workspace.UpdateWorkspaceUseCase
	deleteUseCase       *workspace.DeleteWorkspaceUseCase
	listMembersUseCase  *workspace.ListMembersUseCase
	changeRoleUseCase   *workspace.ChangeMemberRoleUseCase
	removeMemberUseCase *workspace.RemoveMemberUseCase
	inviteUseCase       *workspace.InviteMemberUseCase
	listInvitesUseCase  *workspace.ListInvitesUseCase
	cancelInviteUseCase *workspace.CancelInviteUseCase
	acceptInviteUseCase *workspace.AcceptInviteUseCase
	getInviteUseCase    *workspace.GetInviteUseCase
}

// NewWorkspaceController creates a new workspace controller instance.
func NewWorkspaceController(
	createUseCase *workspace.CreateWorkspaceUseCase,
	listUseCase *workspace.ListWorkspacesUseCase,
	getUseCase *workspace.GetWorkspaceUseCase,
	updateUseCase *workspace.UpdateWorkspaceUseCase,
	deleteUseCase *workspace.DeleteWorkspaceUseCase,
	listMembersUseCase *workspace.ListMembersUseCase,
	changeRoleUseCase *workspace.ChangeMemberRoleUseCase,
	removeMemberUseCase *workspace.RemoveMemberUseCase,
	inviteUseCase *workspace.InviteMemberUseCase,
	listInvitesUseCase *workspace.ListInvitesUseCase,
	cancelInviteUseCase *workspace.CancelInviteUseCase,
	acceptInviteUseCase *workspace.AcceptInviteUseCase,
	getInviteUseCase *workspace.GetInviteUseCase,
) *WorkspaceController {
	return &WorkspaceController{
		createUseCase:       createUseCase,
		listUseCase:         listUseCase,
		getUseCase:          getUseCase,
		updateUseCase:       updateUseCase,
		deleteUseCase:       deleteUseCase,
		listMembersUseCase:  listMembersUseCase,
		changeRoleUseCase:   changeRoleUseCase,
		removeMemberUseCase: removeMemberUseCase,
		inviteUseCase:       inviteUseCase,
		listInvitesUseCase:  listInvitesUseCase,
		cancelInviteUseCase: cancelInviteUseCase,
		acceptInviteUseCase: acceptInviteUseCase,
		getInviteUseCase:    getInviteUseCase,
	}
}

// Create handles POST /workspaces requests.
func (c *WorkspaceController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateWorkspaceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingWorkspaceFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), workspace.CreateWorkspaceInput{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     userID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	response := dto.ToWorkspaceResponse(output.Workspace)
	response.Role = string(entity.WorkspaceRoleOwner)
	ctx.JSON(http.StatusCreated, dto.NewDataResponse(response))
}

// List handles GET /workspaces requests.
func (c *WorkspaceController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), workspace.ListWorkspacesInput{UserID: userID})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToWorkspaceListResponse(output.Workspaces)))
}

// Get handles GET /workspaces/:id requests.
func (c *WorkspaceController) Get(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	workspaceID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), workspace.GetWorkspaceInput{
		WorkspaceID: workspaceID,
		UserID:      userID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	response := dto.ToWorkspaceResponse(output.Workspace)
	response.Role = string(output.Role)
	ctx.JSON(http.StatusOK, dto.NewDataResponse(gin.H{
		"workspace": response,
		"members":   dto.ToMemberListResponse(output.Members).Members,
	}))
}

// Update handles PATCH /workspaces/:id requests.
func (c *WorkspaceController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	workspaceID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateWorkspaceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingWorkspaceFields),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), workspace.UpdateWorkspaceInput{
		WorkspaceID: workspaceID,
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToWorkspaceResponse(output.Workspace)))
}

// Delete handles DELETE /workspaces/:id requests.
func (c *WorkspaceController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	workspaceID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), workspace.DeleteWorkspaceInput{
		WorkspaceID: workspaceID,
		UserID:      userID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(gin.H{"message": output.Message}))
}

// ListMembers handles GET /workspaces/:id/members requests.
func (c *WorkspaceController) ListMembers(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	workspaceID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := c.listMembersUseCase.Execute(ctx.Request.Context(), workspace.ListMembersInput{
		WorkspaceID: workspaceID,
		UserID:      userID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToMemberListResponse(output.Members)))
}

// ChangeMemberRole handles PUT /workspaces/:id/members/:memberId requests.
func (c *WorkspaceController) ChangeMemberRole(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	workspaceID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}
	memberID, ok := parseUUIDParam(ctx, "memberId")
	if !ok {
		return
	}

	var req dto.ChangeMemberRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidWorkspaceRole),
		})
		return
	}

	output, err := c.changeRoleUseCase.Execute(ctx.Request.Context(), workspace.ChangeMemberRoleInput{
		WorkspaceID: workspaceID,
		MemberID:    memberID,
		UserID:      userID,
		Role:        entity.WorkspaceRole(req.Role),
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToMemberResponse(output.Member)))
}

// RemoveMember handles DELETE /workspaces/:id/members/:memberId requests.
func (c *WorkspaceController) RemoveMember(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	workspaceID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}
	memberID, ok := parseUUIDParam(ctx, "memberId")
	if !ok {
		return
	}

	output, err := c.removeMemberUseCase.Execute(ctx.Request.Context(), workspace.RemoveMemberInput{
		WorkspaceID: workspaceID,
		MemberID:    memberID,
		UserID:      userID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(gin.H{"message": output.Message}))
}

// Leave handles DELETE /workspaces/:id/members/me requests. Leaving is
// removal of the caller's own membership.
func (c *WorkspaceController) Leave(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	workspaceID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := c.removeMemberUseCase.Leave(ctx.Request.Context(), workspace.LeaveInput{
		WorkspaceID: workspaceID,
		UserID:      userID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(gin.H{"message": output.Message}))
}

// Invite handles POST /workspaces/:id/invites requests.
func (c *WorkspaceController) Invite(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	workspaceID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.InviteMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidInviteEmail),
		})
		return
	}

	output, err := c.inviteUseCase.Execute(ctx.Request.Context(), workspace.InviteMemberInput{
		WorkspaceID: workspaceID,
		Email:       req.Email,
		Role:        entity.WorkspaceRole(req.Role),
		InviterID:   userID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewDataResponse(dto.ToInviteResponse(output.Invite)))
}

// ListInvites handles GET /workspaces/:id/invites requests.
func (c *WorkspaceController) ListInvites(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	workspaceID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	output, err := c.listInvitesUseCase.Execute(ctx.Request.Context(), workspace.ListInvitesInput{
		WorkspaceID: workspaceID,
		UserID:      userID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.ToInviteListResponse(output.Invites)))
}

// CancelInvite handles DELETE /workspaces/:id/invites/:inviteId requests.
func (c *WorkspaceController) CancelInvite(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	workspaceID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}
	inviteID, ok := parseUUIDParam(ctx, "inviteId")
	if !ok {
		return
	}

	output, err := c.cancelInviteUseCase.Execute(ctx.Request.Context(), workspace.CancelInviteInput{
		WorkspaceID: workspaceID,
		InviteID:    inviteID,
		UserID:      userID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(gin.H{"message": output.Message}))
}

// AcceptInvite handles POST /invites/accept requests.
func (c *WorkspaceController) AcceptInvite(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.AcceptInviteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInviteNotFound),
		})
		return
	}

	output, err := c.acceptInviteUseCase.Execute(ctx.Request.Context(), workspace.AcceptInviteInput{
		Token:  req.Token,
		UserID: userID,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(dto.AcceptInviteResponse{
		WorkspaceID:   output.WorkspaceID.String(),
		WorkspaceName: output.WorkspaceName,
		Role:          string(output.Role),
	}))
}

// GetInvite handles GET /invites/:token requests. The endpoint is public so
// invited users can preview a workspace before registering.
func (c *WorkspaceController) GetInvite(ctx *gin.Context) {
	token := ctx.Param("token")
	if token == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invite token is required",
			Code:  string(domainerror.ErrCodeInviteNotFound),
		})
		return
	}

	output, err := c.getInviteUseCase.Execute(ctx.Request.Context(), workspace.GetInviteInput{Token: token})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	response := dto.ToInviteResponse(output.Invite)
	response.WorkspaceName = output.WorkspaceName
	ctx.JSON(http.StatusOK, dto.NewDataResponse(response))
}
