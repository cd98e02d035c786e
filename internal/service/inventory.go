package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pageza/geladeira/backend/internal/models"
)

// DefaultUnit is used when a food is saved without a unit
const DefaultUnit = "unidade(s)"

var ErrFoodNotFound = errors.New("food not found")

var units = []string{"kg", "g", "l", "ml", "unidade(s)", "xícara(s)", "colher(es)", "fatia(s)", "dente(s)"}

var demoFoods = []FoodInput{
	{Name: "Ovos", Quantity: 12, Unit: "unidade(s)"},
	{Name: "Leite", Quantity: 1, Unit: "l"},
	{Name: "Tomate", Quantity: 3, Unit: "unidade(s)"},
	{Name: "Queijo", Quantity: 200, Unit: "g"},
}

// FoodInput is the editable part of a food record
type FoodInput struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// ValidationError maps each rejected field to a user facing message
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Fields[k]
	}
	return "invalid food: " + strings.Join(parts, "; ")
}

func (in FoodInput) normalize() (FoodInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Unit = strings.TrimSpace(in.Unit)
	if in.Unit == "" {
		in.Unit = DefaultUnit
	}

	fields := map[string]string{}
	if in.Name == "" {
		fields["name"] = "Nome do alimento é obrigatório"
	}
	if in.Quantity <= 0 {
		fields["quantity"] = "Quantidade deve ser maior que zero"
	}
	if len(fields) > 0 {
		return in, &ValidationError{Fields: fields}
	}
	return in, nil
}

// InventoryService keeps the fridge contents in memory, in insertion order
type InventoryService struct {
	mu     sync.RWMutex
	foods  []models.Food
	logger *zap.Logger
}

// NewInventoryService creates an empty inventory
func NewInventoryService(logger *zap.Logger) *InventoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryService{logger: logger}
}

// Seed adds the demo items
func (s *InventoryService) Seed() error {
	for _, in := range demoFoods {
		if _, err := s.Add(in); err != nil {
			return fmt.Errorf("failed to seed %s: %w", in.Name, err)
		}
	}
	return nil
}

// List returns a copy of every food record
func (s *InventoryService) List() []models.Food {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Food(nil), s.foods...)
}

// Get retrieves a food by ID
func (s *InventoryService) Get(id uuid.UUID) (models.Food, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.foods[i], nil
	}
	return models.Food{}, ErrFoodNotFound
}

// Add validates and appends a new food
func (s *InventoryService) Add(in FoodInput) (models.Food, error) {
	in, err := in.normalize()
	if err != nil {
		return models.Food{}, err
	}
	food := models.Food{ID: uuid.New(), Name: in.Name, Quantity: in.Quantity, Unit: in.Unit}

	s.mu.Lock()
	s.foods = append(s.foods, food)
	s.mu.Unlock()

	s.logger.Info("food added", zap.String("id", food.ID.String()), zap.String("name", food.Name))
	return food, nil
}

// Update replaces a food in place, keeping its ID and position
func (s *InventoryService) Update(id uuid.UUID, in FoodInput) (models.Food, error) {
	in, err := in.normalize()
	if err != nil {
		return models.Food{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return models.Food{}, ErrFoodNotFound
	}
	s.foods[i] = models.Food{ID: id, Name: in.Name, Quantity: in.Quantity, Unit: in.Unit}

	s.logger.Info("food updated", zap.String("id", id.String()))
	return s.foods[i], nil
}

// Delete removes a food
func (s *InventoryService) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return ErrFoodNotFound
	}
	s.foods = append(s.foods[:i], s.foods[i+1:]...)

	s.logger.Info("food deleted", zap.String("id", id.String()))
	return nil
}

// Ingredients returns a snapshot of the inventory as recipe input
func (s *InventoryService) Ingredients() []models.Ingredient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Ingredient, len(s.foods))
	for i, f := range s.foods {
		out[i] = f.Ingredient()
	}
	return out
}

// Units returns the units offered when registering a food
func (s *InventoryService) Units() []string {
	return append([]string(nil), units...)
}

// caller holds s.mu
func (s *InventoryService) indexOf(id uuid.UUID) int {
	for i, f := range s.foods {
		if f.ID == id {
			return i
		}
	}
	return -1
}
