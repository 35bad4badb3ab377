package store

import "engage/models"

func (s *Store) Submission(id string) (*models.Submission, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, submission := range s.submissions {
		if submission.ID == id {
			return submission.Clone(), true
		}
	}
	return nil, false
}

func (s *Store) PutSubmission(submission *models.Submission) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.submissions {
		if existing.ID == submission.ID {
			s.submissions[i] = submission.Clone()
			return
		}
	}
	s.submissions = append([]*models.Submission{submission.Clone()}, s.submissions...)
}

func (s *Store) Submissions() []*models.Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Submission, 0, len(s.submissions))
	for _, submission := range s.submissions {
		out = append(out, submission.Clone())
	}
	return out
}

func (s *Store) Withdrawal(id string) (*models.WithdrawalRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, request := range s.withdrawals {
		if request.ID == id {
			return request.Clone(), true
		}
	}
	return nil, false
}

func (s *Store) PutWithdrawal(request *models.WithdrawalRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.withdrawals {
		if existing.ID == request.ID {
			s.withdrawals[i] = request.Clone()
			return
		}
	}
	s.withdrawals = append([]*models.WithdrawalRequest{request.Clone()}, s.withdrawals...)
}

func (s *Store) Withdrawals() []*models.WithdrawalRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.WithdrawalRequest, 0, len(s.withdrawals))
	for _, request := range s.withdrawals {
		out = append(out, request.Clone())
	}
	return out
}

func (s *Store) Deposit(id string) (*models.DepositRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, request := range s.deposits {
		if request.ID == id {
			return request.Clone(), true
		}
	}
	return nil, false
}

func (s *Store) PutDeposit(request *models.DepositRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.deposits {
		if existing.ID == request.ID {
			s.deposits[i] = request.Clone()
			return
		}
	}
	s.deposits = append([]*models.DepositRequest{request.Clone()}, s.deposits...)
}

func (s *Store) Deposits() []*models.DepositRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.DepositRequest, 0, len(s.deposits))
	for _, request := range s.deposits {
		out = append(out, request.Clone())
	}
	return out
}
