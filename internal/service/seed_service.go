package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"golang.org/x/crypto/bcrypt"

	"github.com/skillswap/skillswap-backend/internal/models"
	"github.com/skillswap/skillswap-backend/internal/repository"
)

// SeedService генерирует фейковые данные для тестирования.
type SeedService struct {
	userRepo     *repository.UserRepository
	skillRepo    *repository.SkillRepository
	swapRepo     *repository.SwapRepository
	feedbackRepo *repository.FeedbackRepository
}

// NewSeedService создаёт новый сервис для генерации данных.
func NewSeedService(userRepo *repository.UserRepository, skillRepo *repository.SkillRepository, swapRepo *repository.SwapRepository, feedbackRepo *repository.FeedbackRepository) *SeedService {
	return &SeedService{
		userRepo:     userRepo,
		skillRepo:    skillRepo,
		swapRepo:     swapRepo,
		feedbackRepo: feedbackRepo,
	}
}

// SeedData генерирует каталог навыков, пользователей, их навыки,
// обмены и отзывы.
func (s *SeedService) SeedData(ctx context.Context, numUsers, numSwaps int) error {
	skills, err := s.seedSkills(ctx)
	if err != nil {
		return fmt.Errorf("seed service: не удалось создать каталог навыков: %w", err)
	}

	users, userSkills, err := s.seedUsers(ctx, numUsers, skills)
	if err != nil {
		return fmt.Errorf("seed service: не удалось создать пользователей: %w", err)
	}

	if err := s.seedSwaps(ctx, users, userSkills, numSwaps); err != nil {
		return fmt.Errorf("seed service: не удалось создать обмены: %w", err)
	}

	return nil
}

// seedCatalog — пары название/категория каталога навыков.
var seedCatalog = []models.Skill{
	{Name: "JavaScript", Category: "Программирование"},
	{Name: "TypeScript", Category: "Программирование"},
	{Name: "Python", Category: "Программирование"},
	{Name: "Go", Category: "Программирование"},
	{Name: "SQL", Category: "Программирование"},
	{Name: "Machine Learning", Category: "Данные"},
	{Name: "Data Analysis", Category: "Данные"},
	{Name: "UI/UX Design", Category: "Дизайн"},
	{Name: "Figma", Category: "Дизайн"},
	{Name: "Photoshop", Category: "Дизайн"},
	{Name: "Английский язык", Category: "Языки"},
	{Name: "Испанский язык", Category: "Языки"},
	{Name: "Французский язык", Category: "Языки"},
	{Name: "Гитара", Category: "Музыка"},
	{Name: "Фортепиано", Category: "Музыка"},
	{Name: "Вокал", Category: "Музыка"},
	{Name: "Фотография", Category: "Творчество"},
	{Name: "Копирайтинг", Category: "Творчество"},
	{Name: "Кулинария", Category: "Быт"},
	{Name: "Йога", Category: "Спорт"},
	{Name: "Шахматы", Category: "Игры"},
}

// seedSkills наполняет каталог, пропуская уже существующие навыки.
func (s *SeedService) seedSkills(ctx context.Context) ([]models.Skill, error) {
	skills := make([]models.Skill, 0, len(seedCatalog))
	for _, entry := range seedCatalog {
		exists, err := s.skillRepo.ExistsByName(ctx, entry.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}
		skill := entry
		if err := s.skillRepo.Create(ctx, &skill); err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	if len(skills) == 0 {
		// Каталог уже наполнен, берём существующий.
		return s.skillRepo.List(ctx, "")
	}
	return skills, nil
}

// seedUsers создаёт пользователей и раздаёт каждому навыки обеих ролей.
func (s *SeedService) seedUsers(ctx context.Context, count int, skills []models.Skill) ([]*models.User, map[string][]models.UserSkill, error) {
	firstNames := []string{
		"Александр", "Дмитрий", "Максим", "Сергей", "Андрей", "Алексей", "Артём", "Илья",
		"Анна", "Мария", "Елена", "Ольга", "Татьяна", "Наталья", "Ирина", "Светлана",
		"Екатерина", "Юлия", "Анастасия", "Дарья", "Виктория", "Полина", "София", "Алиса",
	}
	lastNames := []string{
		"Иванов", "Петров", "Смирнов", "Козлов", "Соколов", "Попов", "Лебедев", "Новиков",
		"Морозов", "Волков", "Васильев", "Зайцев", "Павлов", "Семёнов", "Голубев", "Фёдоров",
	}
	locations := []string{
		"Москва", "Санкт-Петербург", "Новосибирск", "Екатеринбург", "Казань",
		"Нижний Новгород", "Самара", "Ростов-на-Дону", "Красноярск", "Воронеж",
	}
	bios := []string{
		"Люблю учиться новому и делиться тем, что умею сам.",
		"Преподаю уже несколько лет, ищу интересные навыки взамен.",
		"Самоучка во всём, что делаю. Обмен навыками — лучший способ расти.",
		"Готов заниматься по вечерам и на выходных.",
		"Ищу партнёров для регулярных занятий.",
	}
	slots := []string{"будни вечером", "выходные", "будни днём", "по договорённости"}
	domains := []string{"gmail.com", "yandex.ru", "mail.ru", "outlook.com"}

	passwordHash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	users := make([]*models.User, 0, count)
	userSkills := make(map[string][]models.UserSkill, count)

	for i := 0; i < count; i++ {
		firstName := firstNames[rand.Intn(len(firstNames))]
		lastName := lastNames[rand.Intn(len(lastNames))]
		email := fmt.Sprintf("%s.%s.%d@%s",
			toLatin(firstName), toLatin(lastName), rand.Intn(100000), domains[rand.Intn(len(domains))])

		bio := bios[rand.Intn(len(bios))]
		location := locations[rand.Intn(len(locations))]

		user := &models.User{
			Name:         fmt.Sprintf("%s %s", firstName, lastName),
			Email:        email,
			PasswordHash: string(passwordHash),
			Role:         models.UserRoleMember,
			Bio:          &bio,
			Location:     &location,
			Availability: []string{slots[rand.Intn(len(slots))]},
			IsPublic:     true,
			IsActive:     true,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, nil, err
		}
		users = append(users, user)

		// По 1-3 навыка каждой роли без повторов внутри роли.
		for _, role := range []models.SkillRole{models.SkillRoleOffered, models.SkillRoleWanted} {
			picked := map[int]struct{}{}
			n := 1 + rand.Intn(3)
			for len(picked) < n && len(picked) < len(skills) {
				j := rand.Intn(len(skills))
				if _, ok := picked[j]; ok {
					continue
				}
				picked[j] = struct{}{}

				us := models.UserSkill{
					UserID:     user.ID,
					SkillID:    skills[j].ID,
					Role:       role,
					SkillLevel: randomSkillLevel(),
				}
				if err := s.skillRepo.CreateUserSkill(ctx, &us); err != nil {
					return nil, nil, err
				}
				userSkills[user.ID.String()] = append(userSkills[user.ID.String()], us)
			}
		}
	}

	return users, userSkills, nil
}

// seedSwaps создаёт обмены между случайными парами; часть принимается,
// по принятым оставляются отзывы.
func (s *SeedService) seedSwaps(ctx context.Context, users []*models.User, userSkills map[string][]models.UserSkill, count int) error {
	if len(users) < 2 {
		return nil
	}

	comments := []string{
		"Отличный обмен, всё понятно объясняет.",
		"Занятия прошли продуктивно, рекомендую.",
		"Хороший партнёр, договорились о продолжении.",
		"Немного не совпали по расписанию, но в целом полезно.",
	}

	created := 0
	for attempts := 0; created < count && attempts < count*10; attempts++ {
		from := users[rand.Intn(len(users))]
		to := users[rand.Intn(len(users))]
		if from.ID == to.ID {
			continue
		}

		offered := pickByRole(userSkills[from.ID.String()], models.SkillRoleOffered)
		requested := pickByRole(userSkills[to.ID.String()], models.SkillRoleOffered)
		if offered == nil || requested == nil {
			continue
		}

		swap := &models.Swap{
			FromUserID:       from.ID,
			ToUserID:         to.ID,
			SkillOfferedUS:   offered.ID,
			SkillRequestedUS: requested.ID,
			Status:           models.SwapStatusPending,
		}
		if err := s.swapRepo.Create(ctx, swap); err != nil {
			if errors.Is(err, repository.ErrDuplicatePendingSwap) {
				continue
			}
			return err
		}
		created++

		// Примерно половину принимаем и оставляем отзыв.
		if rand.Intn(2) == 0 {
			if _, err := s.swapRepo.UpdateStatusIfPending(ctx, swap.ID, models.SwapStatusAccepted); err != nil {
				return err
			}
			comment := comments[rand.Intn(len(comments))]
			fb := &models.Feedback{
				SwapID:   swap.ID,
				FromUser: to.ID,
				Rating:   3 + rand.Intn(3),
				Comment:  &comment,
			}
			if err := s.feedbackRepo.Create(ctx, fb); err != nil {
				return err
			}
		}
	}

	return nil
}

func pickByRole(skills []models.UserSkill, role models.SkillRole) *models.UserSkill {
	matching := []models.UserSkill{}
	for _, us := range skills {
		if us.Role == role {
			matching = append(matching, us)
		}
	}
	if len(matching) == 0 {
		return nil
	}
	us := matching[rand.Intn(len(matching))]
	return &us
}

func randomSkillLevel() string {
	levels := []string{
		models.SkillLevelBeginner,
		models.SkillLevelIntermediate,
		models.SkillLevelAdvanced,
		models.SkillLevelExpert,
	}
	return levels[rand.Intn(len(levels))]
}

// toLatin транслитерирует кириллицу для генерации email.
func toLatin(s string) string {
	translit := map[rune]string{
		'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "e",
		'ж': "zh", 'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m",
		'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
		'ф': "f", 'х': "h", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "sch",
		'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
	}

	result := ""
	for _, r := range s {
		lower := r
		if r >= 'А' && r <= 'Я' || r == 'Ё' {
			lower = r + ('а' - 'А')
			if r == 'Ё' {
				lower = 'ё'
			}
		}
		if lat, ok := translit[lower]; ok {
			result += lat
		} else {
			result += string(lower)
		}
	}
	return result
}
