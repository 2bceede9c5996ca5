package controllers

import (
	"ehr-client/internal/app/contracts"
	"ehr-client/internal/app/models"
	"ehr-client/internal/pkg/constvars"
	"ehr-client/internal/pkg/exceptions"
	"ehr-client/internal/pkg/utils"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	SessionService contracts.SessionService
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase, sessionService contracts.SessionService) *AuthController {
	return &AuthController{
		Log:            logger,
		AuthUsecase:    authUsecase,
		SessionService: sessionService,
	}
}

func (ctrl *AuthController) ShowLogin(w http.ResponseWriter, r *http.Request) {
	if models.SessionFromContext(r.Context()).IsAuthenticated() {
		http.Redirect(w, r, constvars.PagePatientCreate, constvars.StatusSeeOther)
		return
	}
	p := loginPage
	p.Success = r.URL.Query().Get(constvars.URLQueryParamSuccess)
	p.Error = r.URL.Query().Get(constvars.URLQueryParamError)
	renderPage(ctrl.Log, w, constvars.StatusOK, p)
}

// Login redisplays the login page on any failure with the status that
// describes it: 400 for missing fields, 401 for rejected credentials and
// 503 when the backend cannot be reached.
func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	request, err := utils.BuildLoginFromForm(r)
	if err != nil {
		ctrl.renderLoginError(w, err)
		return
	}
	username := request.Username

	credential, err := ctrl.AuthUsecase.Login(r.Context(), request)
	if err != nil {
		ctrl.renderLoginError(w, err)
		return
	}

	_, err = ctrl.SessionService.Set(r.Context(), w, r, request.Username, *credential)
	if err != nil {
		ctrl.renderLoginError(w, err)
		return
	}

	ctrl.Log.Info("AuthController.Login succeeded", zap.String(constvars.LoggingUsernameKey, username))
	utils.BuildRedirectWithFlash(w, r, constvars.PagePatientCreate, constvars.URLQueryParamSuccess, constvars.LoginSuccessMessage)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	err := ctrl.SessionService.Clear(r.Context(), w, r)
	if err != nil {
		ctrl.Log.Error("AuthController.Logout error clearing session", zap.Error(err))
	}
	utils.BuildRedirectWithFlash(w, r, constvars.PageLogin, constvars.URLQueryParamSuccess, constvars.LogoutSuccessMessage)
}

// LoginRejected redisplays the login page for a request the login limiter
// turned away.
func (ctrl *AuthController) LoginRejected(w http.ResponseWriter, r *http.Request, err error) {
	ctrl.renderLoginError(w, err)
}

func (ctrl *AuthController) renderLoginError(w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	message := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		message = customErr.ClientMessage
		if exceptions.IsBackendUnreachable(customErr) {
			message = fmt.Sprintf("%s: %s", constvars.ErrClientUIBackendNotReachable, customErr.Details)
		}
		ctrl.Log.Warn("AuthController.Login failed",
			zap.Int(constvars.LoggingStatusCodeKey, code),
			zap.String("dev_message", customErr.DevMessage),
		)
	} else {
		ctrl.Log.Error("AuthController.Login failed", zap.Error(err))
	}

	p := loginPage
	p.Error = message
	renderPage(ctrl.Log, w, code, p)
}
