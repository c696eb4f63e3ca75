package constants

// Queue names
const (
	QueueAnnouncementEvents = "announcement_events"
)

// Exchanges and routing keys
const (
	ClassifiedsExchange          = "classifieds_exchange"
	RoutingKeyAnnouncementEvents = "announcements.event"
)

// Dead-letter infrastructure for messages that exhaust their retries.
const (
	FinalDLXExchange   = "announcement_events_final_dlx"
	FinalDLQ           = "announcement_events_final_dlq"
	FinalDLQRoutingKey = "announcements.dlq.key"
)

// Event types as carried in the event-type message header.
const (
	EventAnnouncementPublished = "AnnouncementPublishedEvent"
	EventAnnouncementRemoved   = "AnnouncementRemovedEvent"
)
