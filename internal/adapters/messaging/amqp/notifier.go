package amqp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/budget_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/budget_ledger/internal/core/ports/services"
	"github.com/SscSPs/budget_ledger/internal/middleware"
	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// publisher is the subset of *amqp091.Channel the notifier needs.
type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

// Notifier publishes invitation notices to a direct exchange.
type Notifier struct {
	conn         *amqp091.Connection
	channel      publisher
	exchangeName string
	routingKey   string
}

var _ portssvc.InvitationNotifier = (*Notifier)(nil)

// NewNotifier dials url and declares the exchange invitations are published to.
func NewNotifier(url, exchangeName, routingKey string) (*Notifier, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchangeName, // name
		"direct",     // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &Notifier{
		conn:         conn,
		channel:      channel,
		exchangeName: exchangeName,
		routingKey:   routingKey,
	}, nil
}

func newNotifierWithPublisher(p publisher, exchangeName, routingKey string) *Notifier {
	return &Notifier{channel: p, exchangeName: exchangeName, routingKey: routingKey}
}

// NotifyMemberInvited publishes one persistent JSON message per invitation.
func (n *Notifier) NotifyMemberInvited(ctx context.Context, invitation domain.MemberInvitation) error {
	body, err := NewInvitationMessage(invitation).ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = n.channel.PublishWithContext(
		ctx,
		n.exchangeName, // exchange
		n.routingKey,   // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).InfoContext(ctx, "Published invitation message",
		slog.String("workspace_id", invitation.WorkspaceID),
		slog.String("profile_id", invitation.ProfileID),
		slog.String("exchange", n.exchangeName),
		slog.String("routing_key", n.routingKey))
	return nil
}

func (n *Notifier) Close() error {
	if ch, ok := n.channel.(*amqp091.Channel); ok && ch != nil {
		ch.Close()
	}
	if n.conn != nil {
		return n.conn.Close()
	}
	return nil
}

// LogNotifier records invitations in the log when no broker is configured.
type LogNotifier struct{}

var _ portssvc.InvitationNotifier = LogNotifier{}

func (LogNotifier) NotifyMemberInvited(ctx context.Context, invitation domain.MemberInvitation) error {
	middleware.GetLoggerFromCtx(ctx).InfoContext(ctx, "Member invited",
		slog.String("workspace_id", invitation.WorkspaceID),
		slog.String("profile_id", invitation.ProfileID),
		slog.String("email", invitation.Email),
		slog.String("role", string(invitation.Role)))
	return nil
}
