package store

import "engage/models"

func (s *Store) Campaign(id string) (*models.Campaign, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, campaign := range s.campaigns {
		if campaign.ID == id {
			return campaign.Clone(), true
		}
	}
	return nil, false
}

// PutCampaign replaces an existing campaign in place or prepends a new one,
// newest first.
func (s *Store) PutCampaign(campaign *models.Campaign) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.campaigns {
		if existing.ID == campaign.ID {
			s.campaigns[i] = campaign.Clone()
			return
		}
	}
	s.campaigns = append([]*models.Campaign{campaign.Clone()}, s.campaigns...)
}

func (s *Store) Campaigns() []*models.Campaign {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Campaign, 0, len(s.campaigns))
	for _, campaign := range s.campaigns {
		out = append(out, campaign.Clone())
	}
	return out
}

func (s *Store) CampaignsByCreator(creatorID string) []*models.Campaign {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Campaign, 0)
	for _, campaign := range s.campaigns {
		if campaign.CreatorID == creatorID {
			out = append(out, campaign.Clone())
		}
	}
	return out
}

func (s *Store) Task(id string) (*models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, task := range s.tasks {
		if task.ID == id {
			return task.Clone(), true
		}
	}
	return nil, false
}

func (s *Store) PutTask(task *models.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.tasks {
		if existing.ID == task.ID {
			s.tasks[i] = task.Clone()
			return
		}
	}
	s.tasks = append(s.tasks, task.Clone())
}

func (s *Store) Tasks() []*models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		out = append(out, task.Clone())
	}
	return out
}
