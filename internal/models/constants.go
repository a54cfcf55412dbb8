package models

// SwapStatus — статус обмена навыками.
type SwapStatus string

// Статусы обмена. pending — начальный, остальные терминальные.
const (
	SwapStatusPending   SwapStatus = "pending"
	SwapStatusAccepted  SwapStatus = "accepted"
	SwapStatusRejected  SwapStatus = "rejected"
	SwapStatusCancelled SwapStatus = "cancelled"
)

// ValidSwapStatuses список валидных статусов обменов
var ValidSwapStatuses = map[SwapStatus]struct{}{
	SwapStatusPending:   {},
	SwapStatusAccepted:  {},
	SwapStatusRejected:  {},
	SwapStatusCancelled: {},
}

// IsTerminal сообщает, является ли статус конечным.
func (s SwapStatus) IsTerminal() bool {
	return s == SwapStatusAccepted || s == SwapStatusRejected || s == SwapStatusCancelled
}

// SkillRole — роль навыка у пользователя: предлагает или хочет изучить.
type SkillRole string

const (
	SkillRoleOffered SkillRole = "offered"
	SkillRoleWanted  SkillRole = "wanted"
)

// ValidSkillRoles список валидных ролей навыка
var ValidSkillRoles = map[SkillRole]struct{}{
	SkillRoleOffered: {},
	SkillRoleWanted:  {},
}

// SkillLevel константы уровней владения навыком
const (
	SkillLevelBeginner     = "Beginner"
	SkillLevelIntermediate = "Intermediate"
	SkillLevelAdvanced     = "Advanced"
	SkillLevelExpert       = "Expert"
)

// ValidSkillLevels список валидных уровней владения
var ValidSkillLevels = map[string]struct{}{
	SkillLevelBeginner:     {},
	SkillLevelIntermediate: {},
	SkillLevelAdvanced:     {},
	SkillLevelExpert:       {},
}

// UserRole константы ролей пользователей платформы
const (
	UserRoleMember = "user"
	UserRoleAdmin  = "admin"
)

// AdminAction константы действий администратора
const (
	AdminActionFlag   = "flag"
	AdminActionBan    = "ban"
	AdminActionDelete = "delete"
	AdminActionCancel = "cancel"
)

// AdminEntity константы типов сущностей в журнале модерации
const (
	AdminEntityUser  = "user"
	AdminEntitySkill = "skill"
	AdminEntitySwap  = "swap"
)
