package notification

import (
	"context"
	"fmt"
	"log"
	"strings"

	activitydomain "reengage-backend/internal/activity/domain"
	trackingdomain "reengage-backend/internal/tracking/domain"
	userdomain "reengage-backend/internal/user/domain"
	userrepo "reengage-backend/internal/user/repository"
	"reengage-backend/pkg/fcm"
)

// EmailSender dispatches a composed email; *mailer.Mailer satisfies this
type EmailSender interface {
	Send(ctx context.Context, to []string, subject, body string) error
}

// PushSender sends a push notification to one device; *fcm.Client satisfies this
type PushSender interface {
	SendToDevice(ctx context.Context, token string, notification fcm.NotificationData) error
}

// Service resolves recipients for an activity's email policy and dispatches
// re-engagement emails, with an optional FCM push alongside. It implements
// the reconciler's NotificationSink contract.
type Service struct {
	userRepo userrepo.UserRepository
	fcmRepo  userrepo.FCMTokenRepository
	email    EmailSender
	push     PushSender // nil disables push
}

// NewService creates a new notification service
func NewService(userRepo userrepo.UserRepository, fcmRepo userrepo.FCMTokenRepository, email EmailSender, push PushSender) *Service {
	return &Service{
		userRepo: userRepo,
		fcmRepo:  fcmRepo,
		email:    email,
		push:     push,
	}
}

// Send dispatches the activity's configured email for one tracking record
// snapshot, then fires a best-effort push ping to the tracked user's devices.
func (s *Service) Send(ctx context.Context, activity *activitydomain.Activity, tracking *trackingdomain.Tracking) error {
	user, err := s.userRepo.FindByID(tracking.UserID)
	if err != nil {
		return fmt.Errorf("failed to load user %s: %w", tracking.UserID, err)
	}
	if user == nil {
		return fmt.Errorf("user %s not found", tracking.UserID)
	}

	to, err := s.resolveRecipients(activity, user)
	if err != nil {
		return err
	}

	subject := activity.EmailSubject
	if subject == "" {
		subject = "Re-engagement: " + activity.Name
	}
	body := renderTemplate(activity.EmailBody, activity, user)

	if err := s.email.Send(ctx, to, renderTemplate(subject, activity, user), body); err != nil {
		return err
	}

	s.sendPush(ctx, activity, user)
	return nil
}

// resolveRecipients maps the activity's recipient policy to concrete addresses
func (s *Service) resolveRecipients(activity *activitydomain.Activity, user *userdomain.User) ([]string, error) {
	switch activity.EmailRecipient {
	case activitydomain.RecipientManager:
		if user.ManagerID == "" {
			return nil, fmt.Errorf("user %s has no manager to notify", user.ID)
		}
		manager, err := s.userRepo.FindByID(user.ManagerID)
		if err != nil {
			return nil, fmt.Errorf("failed to load manager %s: %w", user.ManagerID, err)
		}
		if manager == nil {
			return nil, fmt.Errorf("manager %s not found", user.ManagerID)
		}
		return []string{manager.Email}, nil

	case activitydomain.RecipientThirdParty:
		var addresses []string
		for _, addr := range strings.Split(activity.ThirdPartyEmails, ",") {
			if trimmed := strings.TrimSpace(addr); trimmed != "" {
				addresses = append(addresses, trimmed)
			}
		}
		if len(addresses) == 0 {
			return nil, fmt.Errorf("activity %s has no third-party addresses configured", activity.ID)
		}
		return addresses, nil

	default:
		return []string{user.Email}, nil
	}
}

// sendPush fires a best-effort reminder ping to the user's registered devices
func (s *Service) sendPush(ctx context.Context, activity *activitydomain.Activity, user *userdomain.User) {
	if s.push == nil || s.fcmRepo == nil {
		return
	}

	tokens, err := s.fcmRepo.GetTokensByUserID(user.ID)
	if err != nil {
		log.Printf("[Notification] Error getting FCM tokens for user %s: %v", user.ID, err)
		return
	}

	notification := fcm.NotificationData{
		Title: activity.Name,
		Body:  "You have a pending re-engagement activity",
		Data: map[string]string{
			"type":        "reengagement_reminder",
			"activity_id": activity.ID,
		},
	}
	for _, token := range tokens {
		if err := s.push.SendToDevice(ctx, token.Token, notification); err != nil {
			log.Printf("[Notification] Error sending push to user %s, dropping token: %v", user.ID, err)
			if err := s.fcmRepo.DeleteToken(token.Token); err != nil {
				log.Printf("[Notification] Error deleting stale token: %v", err)
			}
		}
	}
}

// renderTemplate substitutes the supported placeholders in email content
func renderTemplate(text string, activity *activitydomain.Activity, user *userdomain.User) string {
	return strings.NewReplacer(
		"{user}", user.FullName,
		"{activity}", activity.Name,
	).Replace(text)
}
