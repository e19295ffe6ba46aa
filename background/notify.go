package background

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/tourguard-inc/tourguard-api/external/onesignal"
)

const (
	TaskNotifyGeofenceBreach = "notify_geofence_breach"
	TaskNotifyEmergency      = "notify_emergency"
	TaskNotifyResolved       = "notify_emergency_resolved"
)

// admin dashboard clients register under this segment
const adminSegment = "Admin Dashboard"

// NotifyGeofenceBreach pushes a breach alert to the admin dashboard segment
func (b *Background) NotifyGeofenceBreach(touristID, zoneName, dangerLevel, address string) error {
	contents := map[string]string{
		"en": fmt.Sprintf("Tourist %s entered %s zone %q", touristID, dangerLevel, zoneName),
	}
	if address != "" {
		contents["en"] = fmt.Sprintf("%s near %s", contents["en"], address)
	}

	req := &onesignal.NotificationRequest{
		AppID: viper.GetString("onesignal.appid"),
		Headings: map[string]string{
			"en": "Geofence breach",
		},
		Contents:         contents,
		IncludedSegments: []string{adminSegment},
		Data: map[string]interface{}{
			"tourist_id": touristID,
			"zone_name":  zoneName,
		},
		LocalChannelID: "important_alert",
	}
	return b.Onesignal.SendNotification(context.Background(), req)
}

// NotifyEmergency pushes a panic alert to the admin dashboard segment
func (b *Background) NotifyEmergency(touristID, reason string, safetyScore int64) error {
	req := &onesignal.NotificationRequest{
		AppID: viper.GetString("onesignal.appid"),
		Headings: map[string]string{
			"en": "Emergency alert",
		},
		Contents: map[string]string{
			"en": fmt.Sprintf("Tourist %s triggered the panic button: %s", touristID, reason),
		},
		IncludedSegments: []string{adminSegment},
		Data: map[string]interface{}{
			"tourist_id":   touristID,
			"safety_score": safetyScore,
		},
		LocalChannelID: "important_alert",
	}
	return b.Onesignal.SendNotification(context.Background(), req)
}

// NotifyResolved pushes the all-clear for a previously raised emergency
func (b *Background) NotifyResolved(touristID string, safetyScore int64) error {
	req := &onesignal.NotificationRequest{
		AppID: viper.GetString("onesignal.appid"),
		Headings: map[string]string{
			"en": "Emergency resolved",
		},
		Contents: map[string]string{
			"en": fmt.Sprintf("Tourist %s is no longer in emergency", touristID),
		},
		IncludedSegments: []string{adminSegment},
		Data: map[string]interface{}{
			"tourist_id":   touristID,
			"safety_score": safetyScore,
		},
		LocalChannelID: "important_alert",
	}
	return b.Onesignal.SendNotification(context.Background(), req)
}
