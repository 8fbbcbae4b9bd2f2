package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/donation-recon/internal/storage/donation"
	"github.com/carson-networks/donation-recon/internal/storage/entity"
	"github.com/carson-networks/donation-recon/internal/storage/wrongdonation"
)

type Reader struct {
	Donations      *donation.Reader
	WrongDonations *wrongdonation.Reader
	Entities       *entity.Reader
}

func NewReader(exec bob.Executor, lookupExec bob.Executor) *Reader {
	return &Reader{
		Donations:      donation.NewReader(exec),
		WrongDonations: wrongdonation.NewReader(exec),
		Entities:       entity.NewReader(lookupExec),
	}
}
