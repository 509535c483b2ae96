package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"

	"nutritrack/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
	"gorm.io/gorm"
)

// PushService delivers notifications to a user's registered device tokens
// through an SNS platform application (FCM behind the scenes).
type PushService struct {
	db          *gorm.DB
	sns         *awssns.Client
	platformArn string
}

func NewPushService(db *gorm.DB, cfg aws.Config) *PushService {
	return &PushService{
		db:          db,
		sns:         awssns.NewFromConfig(cfg),
		platformArn: os.Getenv("SNS_FCM_ARN"),
	}
}

// Configured reports whether push delivery can actually happen. Token
// bookkeeping works either way.
func (p *PushService) Configured() bool {
	return p != nil && p.platformArn != ""
}

// CreateEndpoint registers a raw device token with SNS and returns the
// endpoint ARN to store alongside it.
func (p *PushService) CreateEndpoint(ctx context.Context, token string) (string, error) {
	if !p.Configured() {
		return "", errors.New("SNS_FCM_ARN not set")
	}
	out, err := p.sns.CreatePlatformEndpoint(ctx, &awssns.CreatePlatformEndpointInput{
		PlatformApplicationArn: aws.String(p.platformArn),
		Token:                  aws.String(token),
	})
	if err != nil {
		return "", err
	}
	return aws.ToString(out.EndpointArn), nil
}

// PushToUser publishes to every endpoint registered for the user. Delivery is
// best effort; failures are logged and swallowed.
func (p *PushService) PushToUser(ctx context.Context, userID, title, body string, data map[string]string) {
	if !p.Configured() {
		return
	}

	var tokens []models.DeviceToken
	if err := p.db.WithContext(ctx).
		Where("user_id = ? AND endpoint_arn <> ''", userID).
		Find(&tokens).Error; err != nil {
		log.Printf("push: loading tokens for %s: %v", userID, err)
		return
	}
	if len(tokens) == 0 {
		return
	}

	// SNS expects the per-platform payload as a JSON-encoded string.
	gcm, _ := json.Marshal(map[string]any{
		"notification": map[string]string{
			"title": title,
			"body":  body,
		},
		"data": data,
	})
	raw, _ := json.Marshal(map[string]string{
		"default": body,
		"GCM":     string(gcm),
	})

	for _, t := range tokens {
		if _, err := p.sns.Publish(ctx, &awssns.PublishInput{
			MessageStructure: aws.String("json"),
			Message:          aws.String(string(raw)),
			TargetArn:        aws.String(t.EndpointARN),
		}); err != nil {
			log.Printf("push: publish to %s: %v", t.EndpointARN, err)
		}
	}
}
