package controller

import "github.com/go-playground/validator/v10"

// validate controller girdilerinin ortak doğrulayıcısı
var validate = validator.New()
