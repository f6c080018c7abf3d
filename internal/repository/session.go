package repository

import (
	"fmt"
	"time"

	"campushub/internal/apperrors"
	"campushub/internal/config"
	"campushub/internal/firebase"
	"campushub/internal/models"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"google.golang.org/api/iterator"
)

// Session bookkeeping lives in its own collection instead of an array on the
// user document, so revoking one session is a single delete and revoking all
// of them is a query plus batched deletes.

// MintSessionCookie exchanges a verified ID token for a session cookie and
// the authenticated subject's uid.
func (fr *FirebaseRepository) MintSessionCookie(idToken string) (string, string, error) {
	decoded, err := fr.authClient.VerifyIDToken(firebase.Context, idToken)
	if err != nil {
		return "", "", apperrors.UnauthenticatedError
	}

	cookie, err := fr.authClient.SessionCookie(firebase.Context, idToken, config.Config.SessionCookieExpiration)
	if err != nil {
		return "", "", fmt.Errorf("error minting session cookie: %v", err)
	}

	return cookie, decoded.UID, nil
}

func (fr *FirebaseRepository) CreateSession(userID, userAgent string) (*models.Session, error) {
	session := &models.Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		UserAgent: userAgent,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(config.Config.SessionCookieExpiration),
	}

	_, err := fr.firestoreClient.Collection(models.FirestoreSessionsCollection).Doc(session.ID).Set(firebase.Context, map[string]interface{}{
		"id":        session.ID,
		"userID":    session.UserID,
		"userAgent": session.UserAgent,
		"createdAt": session.CreatedAt,
		"expiresAt": session.ExpiresAt,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating session: %v", err)
	}

	return session, nil
}

func (fr *FirebaseRepository) DeleteSession(sessionID string) error {
	_, err := fr.firestoreClient.Collection(models.FirestoreSessionsCollection).Doc(sessionID).Delete(firebase.Context)
	return err
}

// ListSessionsForUser returns the user's active (unexpired) sessions.
func (fr *FirebaseRepository) ListSessionsForUser(userID string) ([]*models.Session, error) {
	var sessions []*models.Session
	iter := fr.firestoreClient.Collection(models.FirestoreSessionsCollection).
		Where("userID", "==", userID).
		Where("expiresAt", ">", time.Now()).
		Documents(firebase.Context)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error listing sessions: %v", err)
		}

		var session models.Session
		if err := mapstructure.Decode(doc.Data(), &session); err != nil {
			return nil, fmt.Errorf("error destructuring document: %v", err)
		}
		sessions = append(sessions, &session)
	}

	return sessions, nil
}

// RevokeAllSessions deletes every session record for the user and revokes
// their Firebase refresh tokens, which invalidates existing session cookies
// on the next revocation check.
func (fr *FirebaseRepository) RevokeAllSessions(userID string) error {
	iter := fr.firestoreClient.Collection(models.FirestoreSessionsCollection).Where("userID", "==", userID).Documents(firebase.Context)
	batch := fr.firestoreClient.Batch()
	count := 0
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("error listing sessions: %v", err)
		}
		batch.Delete(doc.Ref)
		count++
	}

	if count > 0 {
		if _, err := batch.Commit(firebase.Context); err != nil {
			return fmt.Errorf("error deleting sessions: %v", err)
		}
	}

	return fr.authClient.RevokeRefreshTokens(firebase.Context, userID)
}
