package create_block

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/service/blocks"
)

// CreateBlockRequest тело запроса на блокировку корта
type CreateBlockRequest struct {
	StartTs string  `json:"startTs"`
	EndTs   string  `json:"endTs"`
	Reason  *string `json:"reason,omitempty"`
}

// BlockResponse тело ответа с созданной блокировкой
type BlockResponse struct {
	ID        string    `json:"id"`
	CourtID   string    `json:"courtId"`
	StartTs   time.Time `json:"startTs"`
	EndTs     time.Time `json:"endTs"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toServiceRequest(courtID string, req *CreateBlockRequest) (*blocks.CreateBlockRequest, error) {
	start, err := time.Parse(time.RFC3339, req.StartTs)
	if err != nil {
		return nil, fmt.Errorf("parse startTs: %w", err)
	}

	end, err := time.Parse(time.RFC3339, req.EndTs)
	if err != nil {
		return nil, fmt.Errorf("parse endTs: %w", err)
	}

	return &blocks.CreateBlockRequest{
		CourtID: courtID,
		StartTs: start.Local(),
		EndTs:   end.Local(),
		Reason:  req.Reason,
	}, nil
}

func toResponse(b *domain.CourtBlock) *BlockResponse {
	return &BlockResponse{
		ID:        b.ID,
		CourtID:   b.CourtID,
		StartTs:   b.StartTs,
		EndTs:     b.EndTs,
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
	}
}
