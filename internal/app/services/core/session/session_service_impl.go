package session

import (
	"context"
	"ehr-client/internal/app/config"
	"ehr-client/internal/app/contracts"
	"ehr-client/internal/app/models"
	"ehr-client/internal/pkg/constvars"
	"ehr-client/internal/pkg/exceptions"
	"ehr-client/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	Log             *zap.Logger
	CookieName      string
	CookieSecure    bool
	Secret          string
	Expiry          time.Duration
}

func NewSessionService(redisRepository contracts.RedisRepository, logger *zap.Logger, internalConfig *config.InternalConfig) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		Log:             logger,
		CookieName:      internalConfig.Session.CookieName,
		CookieSecure:    internalConfig.Session.CookieSecure,
		Secret:          internalConfig.JWT.Secret,
		Expiry:          time.Duration(internalConfig.Session.ExpiredTimeInHours) * time.Hour,
	}
}

func (svc *sessionService) Set(ctx context.Context, w http.ResponseWriter, r *http.Request, username string, credential models.Credential) (*models.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	svc.Log.Info("sessionService.Set called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, username),
	)

	if previousID, ok := svc.sessionIDFromCookie(r); ok {
		if err := svc.RedisRepository.Delete(ctx, sessionKey(previousID)); err != nil {
			svc.Log.Warn("sessionService.Set error deleting previous session",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	now := time.Now().UTC()
	session := &models.Session{
		SessionID:  utils.GenerateSessionID(),
		Username:   username,
		Credential: credential,
		CreatedAt:  now,
		ExpiresAt:  now.Add(svc.Expiry),
	}

	err := svc.RedisRepository.Set(ctx, sessionKey(session.SessionID), session, svc.Expiry)
	if err != nil {
		svc.Log.Error("sessionService.Set error storing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, svc.Secret, svc.Expiry)
	if err != nil {
		svc.Log.Error("sessionService.Set error signing session cookie",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenGenerate(err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     svc.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   svc.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	svc.Log.Info("sessionService.Set succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)
	return session, nil
}

func (svc *sessionService) Get(ctx context.Context, r *http.Request) *models.Session {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	sessionID, ok := svc.sessionIDFromCookie(r)
	if !ok {
		return nil
	}

	sessionData, err := svc.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		svc.Log.Error("sessionService.Get error reading session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return nil
	}
	if sessionData == "" {
		return nil
	}

	session := new(models.Session)
	err = json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		svc.Log.Error("sessionService.Get error parsing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(exceptions.ErrParseSessionData(err)),
		)
		return nil
	}

	if !session.IsAuthenticated() {
		return nil
	}
	return session
}

func (svc *sessionService) Clear(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	svc.Log.Info("sessionService.Clear called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	http.SetCookie(w, &http.Cookie{
		Name:     svc.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   svc.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	sessionID, ok := svc.sessionIDFromCookie(r)
	if !ok {
		return nil
	}

	err := svc.RedisRepository.Delete(ctx, sessionKey(sessionID))
	if err != nil {
		svc.Log.Error("sessionService.Clear error deleting session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return err
	}

	svc.Log.Info("sessionService.Clear succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return nil
}

func (svc *sessionService) sessionIDFromCookie(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(svc.CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	sessionID, err := utils.ParseSessionJWT(cookie.Value, svc.Secret)
	if err != nil {
		svc.Log.Debug("sessionService rejected session cookie", zap.Error(err))
		return "", false
	}
	return sessionID, true
}

func sessionKey(sessionID string) string {
	return constvars.SESSION_KEY_PREFIX + sessionID
}
