package service

import (
	"context"
	"fmt"
	"net/url"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type paymentService struct {
	paymentRepo repository.PaymentRepository
}

func NewPaymentService(paymentRepo repository.PaymentRepository) PaymentService {
	return &paymentService{paymentRepo: paymentRepo}
}

func (s *paymentService) GenerateQRCode(ctx context.Context, paymentID int32) (*domain.Payment, string, error) {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, "", err
	}

	data := fmt.Sprintf("carrental payment %s amount %.2f", payment.Reference, payment.TotalAmount)
	qrURL := fmt.Sprintf(
		"https://api.qrserver.com/v1/create-qr-code/?size=220x220&data=%s",
		url.QueryEscape(data),
	)
	return payment, qrURL, nil
}
