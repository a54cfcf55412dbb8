package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/skillswap/skillswap-backend/internal/models"
)

// Константы валидации
const (
	MinNameLength             = 2
	MaxNameLength             = 100
	MinPasswordLength         = 6
	MaxBioLength              = 500
	MaxLocationLength         = 100
	MinSkillNameLength        = 1
	MaxSkillNameLength        = 50
	MinSkillCategoryLength    = 1
	MaxSkillCategoryLength    = 30
	MaxSkillDescriptionLength = 300
	MaxCommentLength          = 500
	MinRating                 = 1
	MaxRating                 = 5
)

// ValidateLength проверяет длину строки.
func ValidateLength(fieldName, value string, min, max int) error {
	length := utf8.RuneCountInString(value)
	if min > 0 && length < min {
		return fmt.Errorf("%s должен быть не менее %d символов", fieldName, min)
	}
	if max > 0 && length > max {
		return fmt.Errorf("%s должен быть не более %d символов", fieldName, max)
	}
	return nil
}

// ValidateEmail проверяет формат email.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email обязателен")
	}

	email = strings.ToLower(strings.TrimSpace(email))

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return fmt.Errorf("некорректный формат email")
	}

	localPart, domainPart := parts[0], parts[1]

	if len(localPart) == 0 || len(localPart) > 64 {
		return fmt.Errorf("локальная часть email должна быть от 1 до 64 символов")
	}

	emailRegex := regexp.MustCompile(`^[a-z0-9._+-]+$`)
	if !emailRegex.MatchString(localPart) {
		return fmt.Errorf("локальная часть email содержит недопустимые символы")
	}

	domainRegex := regexp.MustCompile(`^[a-z0-9.-]+\.[a-z]{2,}$`)
	if !domainRegex.MatchString(domainPart) {
		return fmt.Errorf("доменная часть email имеет некорректный формат")
	}

	return nil
}

// ValidatePassword проверяет минимальную длину пароля.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("пароль должен быть не менее %d символов", MinPasswordLength)
	}
	return nil
}

// ValidateName проверяет имя пользователя.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("имя обязательно")
	}
	return ValidateLength("имя", strings.TrimSpace(name), MinNameLength, MaxNameLength)
}

// ValidateBio проверяет биографию.
func ValidateBio(bio string) error {
	return ValidateLength("биография", bio, 0, MaxBioLength)
}

// ValidateLocation проверяет местоположение.
func ValidateLocation(location string) error {
	return ValidateLength("местоположение", location, 0, MaxLocationLength)
}

// ValidateSkillName проверяет название навыка.
func ValidateSkillName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("название навыка обязательно")
	}
	return ValidateLength("название навыка", strings.TrimSpace(name), MinSkillNameLength, MaxSkillNameLength)
}

// ValidateSkillCategory проверяет категорию навыка.
func ValidateSkillCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return fmt.Errorf("категория навыка обязательна")
	}
	return ValidateLength("категория навыка", strings.TrimSpace(category), MinSkillCategoryLength, MaxSkillCategoryLength)
}

// ValidateSkillDescription проверяет описание навыка.
func ValidateSkillDescription(description string) error {
	return ValidateLength("описание навыка", description, 0, MaxSkillDescriptionLength)
}

// ValidateSkillLevel проверяет уровень владения навыком.
func ValidateSkillLevel(level string) error {
	if _, ok := models.ValidSkillLevels[level]; !ok {
		return fmt.Errorf("недопустимый уровень владения навыком: %s", level)
	}
	return nil
}

// ValidateSkillRole проверяет роль навыка.
func ValidateSkillRole(role string) error {
	if _, ok := models.ValidSkillRoles[models.SkillRole(role)]; !ok {
		return fmt.Errorf("роль навыка должна быть offered или wanted")
	}
	return nil
}

// ValidateRating проверяет оценку отзыва.
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf("оценка должна быть от %d до %d", MinRating, MaxRating)
	}
	return nil
}

// ValidateComment проверяет комментарий отзыва.
func ValidateComment(comment string) error {
	return ValidateLength("комментарий", comment, 0, MaxCommentLength)
}

// ValidateAvailability проверяет список интервалов доступности.
func ValidateAvailability(slots []string) error {
	for _, slot := range slots {
		if strings.TrimSpace(slot) == "" {
			return fmt.Errorf("интервал доступности не может быть пустым")
		}
		if err := ValidateLength("интервал доступности", slot, 1, 50); err != nil {
			return err
		}
	}
	return nil
}
