package store

import "engage/models"

func (s *Store) Notification(id string) (*models.Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, notification := range s.notifications {
		if notification.ID == id {
			return notification.Clone(), true
		}
	}
	return nil, false
}

func (s *Store) PutNotification(notification *models.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.notifications {
		if existing.ID == notification.ID {
			s.notifications[i] = notification.Clone()
			return
		}
	}
	s.notifications = append([]*models.Notification{notification.Clone()}, s.notifications...)
}

func (s *Store) NotificationsFor(userID string) []*models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Notification, 0)
	for _, notification := range s.notifications {
		if notification.UserID == userID {
			out = append(out, notification.Clone())
		}
	}
	return out
}

func (s *Store) PutAnnouncement(announcement *models.Announcement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.announcements {
		if existing.ID == announcement.ID {
			s.announcements[i] = announcement.Clone()
			return
		}
	}
	s.announcements = append([]*models.Announcement{announcement.Clone()}, s.announcements...)
}

func (s *Store) Announcements() []*models.Announcement {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Announcement, 0, len(s.announcements))
	for _, announcement := range s.announcements {
		out = append(out, announcement.Clone())
	}
	return out
}
