package models

import (
	"gorm.io/gorm"

	"blogbackend/apperrors"
)

// GetOrCreateDefaultTeam resolves the sentinel Default team, creating it on
// first use. Safe under concurrent first-time registrations: a partial unique
// index on the name (created during migration) guarantees a single row, and a
// loser of the race re-reads the winner.
func GetOrCreateDefaultTeam(db *gorm.DB) (*Team, error) {
	team := Team{Name: DefaultTeamName}
	err := db.Where("name = ?", DefaultTeamName).FirstOrCreate(&team).Error
	if err != nil {
		if apperrors.IsDuplicate(err) {
			err = db.Where("name = ?", DefaultTeamName).First(&team).Error
		}
		if err != nil {
			return nil, err
		}
	}
	return &team, nil
}
