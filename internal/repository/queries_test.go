package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExportQueriesExcludeHiddenAndBannedUsers(t *testing.T) {
	queries := map[string]string{
		"export users":    exportUsersQuery,
		"user skill rows": userSkillRowsQuery,
		"homepage cards":  homepageCardsQuery,
		"homepage count":  homepageCountQuery,
	}
	for name, query := range queries {
		assert.Contains(t, query, "u.is_public = TRUE", name)
		assert.Contains(t, query, "u.is_active = TRUE", name)
	}
}

func TestFindReciprocalQueryJoinsBySkillID(t *testing.T) {
	// Замкнутость пары держится на соединении по id навыка:
	// offered кандидата совпадает с wanted пользователя и наоборот.
	assert.Contains(t, findReciprocalQuery, "offered_skill.skill_id = my_wanted.skill_id")
	assert.Contains(t, findReciprocalQuery, "wanted_skill.skill_id = my_offered.skill_id")
	assert.Contains(t, findReciprocalQuery, "offered_skill.role = 'offered'")
	assert.Contains(t, findReciprocalQuery, "wanted_skill.role = 'wanted'")
	// Сам пользователь и скрытые профили в кандидаты не попадают.
	assert.Contains(t, findReciprocalQuery, "u.id != $1")
	assert.Contains(t, findReciprocalQuery, "u.is_public = TRUE")
	assert.Contains(t, findReciprocalQuery, "u.is_active = TRUE")
}

func TestDuplicatePendingQueryCoversBothDirections(t *testing.T) {
	flat := strings.Join(strings.Fields(duplicatePendingQuery), " ")

	assert.Contains(t, flat, "(from_user_id = $1 AND to_user_id = $2) OR (from_user_id = $2 AND to_user_id = $1)")
	assert.Contains(t, flat, "status = 'pending'")
	assert.Contains(t, flat, "skill_offered_us = $3 AND skill_requested_us = $4")
}
